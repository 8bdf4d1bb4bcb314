// Package cli implements the docsect command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dgallion1/docsect/internal/document"
	"github.com/dgallion1/docsect/internal/version"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	doc     document.Options
}

// NewRootCommand builds the docsect command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{doc: document.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "docsect",
		Short: "Convert annotated Markdown into sectioned HTML",
		Long: `docsect converts a Markdown document into an HTML page whose headings are
wrapped in nested <div class="section"> elements, with a table of contents.

A paragraph consisting of ";;;" closes the innermost open section.`,
		SilenceErrors: true,
		Version:       version.Version,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("docsect %s\n", version.String()))

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")
	pf.StringVar(&opts.doc.SiteURL, "site-url", envOr("DOCSECT_SITE_URL", opts.doc.SiteURL), "Canonical URL of the page")
	pf.StringVar(&opts.doc.PreviewImage, "preview-image", envOr("DOCSECT_PREVIEW_IMAGE", opts.doc.PreviewImage), "Social preview image URL")
	pf.StringVar(&opts.doc.TagURLPrefix, "tag-prefix", opts.doc.TagURLPrefix, "URL prefix for tag pages")
	pf.IntVar(&opts.doc.BaseIndent, "base-indent", opts.doc.BaseIndent, "Indent depth of the outermost section")

	cmd.AddCommand(
		newConvertCommand(opts),
		newTOCCommand(opts),
		newBatchCommand(opts),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *rootOptions) processor(cmd *cobra.Command) (*document.Processor, error) {
	if o.doc.BaseIndent < 0 {
		return nil, fmt.Errorf("--base-indent must not be negative")
	}
	return document.NewProcessor(o.doc, o.logger(cmd.ErrOrStderr())), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
