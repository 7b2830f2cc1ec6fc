package main

import (
	"errors"
	"fmt"
	"io"

	"formvalue/internal/analyze"
	"formvalue/internal/common"
)

func runOverrides(patterns []string, stdout io.Writer) error {
	if common.IsEmpty(patterns) {
		return errors.New("no package patterns given")
	}

	report, err := analyze.NewAnalyzer().LoadPackages(patterns...)
	if err != nil {
		return err
	}

	for _, info := range report.Sorted() {
		name := common.QualifiedName(info.ID.PkgPath, info.ID.Name)
		if !info.IsModel {
			name += " (not a model)"
		}

		fmt.Fprintln(stdout, name)

		for _, o := range info.Overrides {
			results := o.Result
			if o.HasError {
				results = "(" + o.Result + ", error)"
			}

			fmt.Fprintf(stdout, "  %-24s %s(%s) %s\n", o.Key, o.Method, o.Param, results)
		}

		for _, rejected := range info.Rejected {
			fmt.Fprintf(stdout, "  rejected: %s\n", rejected)
		}
	}

	return nil
}
