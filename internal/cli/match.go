package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"inboxtags/internal/match"
	"inboxtags/internal/output"
)

func newMatchCmd(opts *options) *cobra.Command {
	var exclude []string

	cmd := &cobra.Command{
		Use:   "match [query]",
		Short: "Print the contacts a query would suggest",
		Long: "Runs the picker's matching without the UI: case-insensitive literal\n" +
			"substring search on names, directory order, already-chosen names excluded.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.directory()
			if err != nil {
				return err
			}

			m := match.NewMatcher(strings.Join(args, " "))
			results := match.ComputeMatches(dir, match.NewNames(exclude...), m.Query())

			if opts.cfg.OutputFormat != "text" {
				return output.Write(cmd.OutOrStdout(), opts.cfg.OutputFormat, results)
			}

			mark := color.New(color.FgYellow, color.Bold).SprintFunc()
			for _, c := range results {
				name := match.Join(m.Highlight(c.Name), func(s string) string { return mark(s) })
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&exclude, "exclude", "x", nil, "Treat this name as already chosen (repeatable)")
	return cmd
}
