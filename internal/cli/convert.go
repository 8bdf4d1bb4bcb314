package cli

import (
	"fmt"

	"github.com/dgallion1/docsect/internal/document"
	"github.com/spf13/cobra"
)

func newConvertCommand(root *rootOptions) *cobra.Command {
	var (
		flags  ioFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert one document into a sectioned HTML page",
		Example: `  docsect convert -i post.md -o post.html
  cat post.md | docsect convert --stdin --stdout --format sections`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validateInput(); err != nil {
				return err
			}
			if err := flags.validateOutput(); err != nil {
				return err
			}
			return validateFormat(format)
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
			return flags.write(cmd, selectOutput(res, format))
		},
	}

	flags.registerInput(cmd)
	flags.registerOutput(cmd)
	cmd.Flags().StringVar(&format, "format", "page", "Output: page, sections or toc")
	return cmd
}

func validateFormat(format string) error {
	switch format {
	case "page", "sections", "toc":
		return nil
	}
	return fmt.Errorf("unknown format %q (want page, sections or toc)", format)
}

func selectOutput(res *document.Result, format string) string {
	switch format {
	case "sections":
		return res.Sections
	case "toc":
		return res.TOC
	}
	return res.Page
}
