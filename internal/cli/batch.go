package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dgallion1/docsect/internal/pipeline"
	"github.com/spf13/cobra"
)

func newBatchCommand(root *rootOptions) *cobra.Command {
	var (
		outDir  string
		workers int
	)

	cmd := &cobra.Command{
		Use:     "batch FILE...",
		Short:   "Convert many documents concurrently",
		Example: `  docsect batch -o public/ posts/*.md`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if err := checkOutputNames(args); err != nil {
				return err
			}

			proc, err := root.processor(cmd)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			log := root.logger(cmd.ErrOrStderr())
			orch := pipeline.NewOrchestrator(pipeline.Options{
				WorkerCount:  workers,
				MaxQueueSize: len(args),
			}, proc, log)
			orch.Start(ctx)

			var jobs []*pipeline.Job
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					orch.Stop()
					return err
				}
				job := pipeline.NewJob(filepath.Base(path), data)
				if err := orch.Submit(job); err != nil {
					orch.Stop()
					return err
				}
				jobs = append(jobs, job)
			}
			orch.Drain()

			failed := 0
			for _, job := range jobs {
				snap := job.Snapshot()
				if snap.Status != pipeline.StatusCompleted {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", snap.Filename, strings.Join(snap.Errors, "; "))
					continue
				}
				out := filepath.Join(outDir, outputName(snap.Filename))
				if err := os.WriteFile(out, []byte(job.Result().Page), 0o644); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(jobs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output-dir", "o", "", "Directory for the generated pages")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "Number of concurrent conversions")
	cmd.MarkFlagRequired("output-dir")
	return cmd
}

// outputName swaps the source extension for .html.
func outputName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".html"
}

// checkOutputNames rejects inputs that would write the same output file,
// such as a/x.md and b/x.md.
func checkOutputNames(paths []string) error {
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		name := outputName(filepath.Base(path))
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s both write %s", prev, path, name)
		}
		seen[name] = path
	}
	return nil
}
