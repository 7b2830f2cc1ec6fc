// Package main provides the CLI entrypoint for formvalue.
//
// formvalue resolves form values of model data described by a YAML schema
// and inspects Go packages for override methods:
//   - resolve: print the form value of attribute paths
//   - check: validate a schema file
//   - overrides: list override methods of exported types in Go packages
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"formvalue/internal/common"
	"formvalue/internal/suggest"
)

const usage = `formvalue - resolve form values of structured records

Usage:
  formvalue resolve -schema FILE -model NAME -data FILE [-dump] PATH...
  formvalue check -schema FILE
  formvalue overrides PATTERN...
`

var commands = []string{"resolve", "check", "overrides", "help"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	command, ok := common.First(args)
	if !ok {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error

	switch command {
	case "resolve":
		err = runResolve(args[1:], stdout, stderr)
	case "check":
		err = runCheck(args[1:], stdout, stderr)
	case "overrides":
		err = runOverrides(args[1:], stdout)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q%s\n\n%s", command, suggest.Hint(command, commands), usage)
		return 2
	}

	if err != nil {
		log.New(stderr, "formvalue: ", 0).Print(err)
		return 1
	}

	return 0
}
