package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTOCCommand(root *rootOptions) *cobra.Command {
	var flags ioFlags

	cmd := &cobra.Command{
		Use:   "toc",
		Short: "Print the table of contents of a document",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.validateInput()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			proc, err := root.processor(cmd)
			if err != nil {
				return err
			}
			data, name, err := flags.read(cmd)
			if err != nil {
				return err
			}
			res, err := proc.Process(data, name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.TOC)
			return err
		},
	}

	flags.registerInput(cmd)
	return cmd
}
