package main

import (
	"flag"
	"fmt"
	"io"

	"formvalue/schema"
)

func runCheck(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)

	schemaPath := fs.String("schema", "", "schema YAML file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *schemaPath == "" {
		return fmt.Errorf("%w: -schema", errMissingFlag)
	}

	f, err := schema.LoadFile(*schemaPath)
	if err != nil {
		return err
	}

	diags := schema.Validate(f)
	for _, d := range diags.All() {
		fmt.Fprintf(stdout, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return fmt.Errorf("%s: %d error(s)", *schemaPath, len(diags.Errors))
	}

	fmt.Fprintf(stdout, "%s: %d model(s) ok\n", *schemaPath, len(f.Models))

	return nil
}
