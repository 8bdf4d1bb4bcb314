package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// ioFlags selects where a command reads and writes. Exactly one source and,
// where an output applies, exactly one destination must be chosen.
type ioFlags struct {
	input    string
	stdin    bool
	output   string
	stdout   bool
	filename string
}

func (f *ioFlags) registerInput(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Input file path")
	cmd.Flags().BoolVar(&f.stdin, "stdin", false, "Read the document from standard input")
	cmd.Flags().StringVar(&f.filename, "filename", "doc.md", "Name used to pick the input format when reading standard input")
	cmd.MarkFlagsMutuallyExclusive("input", "stdin")
}

func (f *ioFlags) registerOutput(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file path")
	cmd.Flags().BoolVar(&f.stdout, "stdout", false, "Write the result to standard output")
	cmd.MarkFlagsMutuallyExclusive("output", "stdout")
}

func (f *ioFlags) validateInput() error {
	if f.input == "" && !f.stdin {
		return fmt.Errorf("an input is required: pass --input PATH or --stdin")
	}
	return nil
}

func (f *ioFlags) validateOutput() error {
	if f.output == "" && !f.stdout {
		return fmt.Errorf("an output is required: pass --output PATH or --stdout")
	}
	return nil
}

// read returns the document bytes and the name that selects its format.
func (f *ioFlags) read(cmd *cobra.Command) ([]byte, string, error) {
	if f.stdin {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, f.filename, nil
	}
	data, err := os.ReadFile(f.input)
	if err != nil {
		return nil, "", err
	}
	return data, filepath.Base(f.input), nil
}

func (f *ioFlags) write(cmd *cobra.Command, s string) error {
	if f.stdout {
		_, err := io.WriteString(cmd.OutOrStdout(), s)
		return err
	}
	return os.WriteFile(f.output, []byte(s), 0o644)
}
