package main

import (
	"fmt"

	"github.com/gostdlib/base/context"
	"github.com/spf13/cobra"

	"github.com/bearlytools/enumkit"
	"github.com/bearlytools/enumkit/errors"
)

func newParseCmd() *cobra.Command {
	var ignoreCase, allowUndefined bool

	cmd := &cobra.Command{
		Use:   "parse <file.toml> <text>",
		Short: "Parse text against a declaration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load(args[0])
			if err != nil {
				return err
			}

			var options []enumkit.ParseOption
			if ignoreCase {
				options = append(options, enumkit.IgnoreCase())
			}
			if allowUndefined {
				options = append(options, enumkit.AllowUndefined())
			}

			out, err := d.parse(context.Background(), args[1], options...)
			if err != nil {
				return fmt.Errorf("%s: %w", reason(err), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "match names without regard to case")
	cmd.Flags().BoolVar(&allowUndefined, "allow-undefined", false, "accept values that are not declared")
	return cmd
}

// reason names the kind of parse failure.
func reason(err error) string {
	switch {
	case errors.Is(err, enumkit.ErrNotDefined):
		return errors.TypeNotDefined.String()
	case errors.Is(err, enumkit.ErrFormat):
		return errors.TypeFormat.String()
	}
	return errors.TypeUnknown.String()
}
