package cli

import (
	"github.com/spf13/cobra"

	"inboxtags/internal/output"
)

func newContactsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "contacts",
		Short: "List the contact directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.directory()
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), opts.cfg.OutputFormat, dir.Contacts())
		},
	}
}
