package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"

	"formvalue/form"
	"formvalue/internal/common"
	"formvalue/schema"
)

var errMissingFlag = errors.New("missing required flag")

func runResolve(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(stderr)

	schemaPath := fs.String("schema", "", "schema YAML file")
	model := fs.String("model", "", "model name declared in the schema")
	dataPath := fs.String("data", "", "YAML or JSON file with the model's data")
	dump := fs.Bool("dump", false, "dump resolved values with their types")

	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *schemaPath == "":
		return fmt.Errorf("%w: -schema", errMissingFlag)
	case *model == "":
		return fmt.Errorf("%w: -model", errMissingFlag)
	case *dataPath == "":
		return fmt.Errorf("%w: -data", errMissingFlag)
	case common.IsEmpty(fs.Args()):
		return errors.New("no paths to resolve")
	}

	f, err := schema.LoadFile(*schemaPath)
	if err != nil {
		return err
	}

	diags := schema.Validate(f)
	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	data, err := schema.LoadData(*dataPath)
	if err != nil {
		return err
	}

	record, err := f.Build(*model, data)
	if err != nil {
		return err
	}

	for _, path := range fs.Args() {
		value, err := form.Resolve(record, path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}

		if *dump {
			fmt.Fprintf(stdout, "%s = %s", path, spew.Sdump(value))
			continue
		}

		fmt.Fprintf(stdout, "%s = %s\n", path, display(value))
	}

	return nil
}

// display renders dates in RFC 3339 and nil as an empty field.
func display(value any) string {
	switch actual := value.(type) {
	case nil:
		return ""
	case time.Time:
		return actual.Format(time.RFC3339)
	case *form.Record:
		return fmt.Sprintf("%v", actual.Attributes())
	default:
		return fmt.Sprintf("%v", actual)
	}
}
