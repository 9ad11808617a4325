// Command ensure-manpage writes the ensure man pages. With --dir it
// writes one page per command into that directory, otherwise the root
// page goes to stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/ensure/cmd/ensure"
	"github.com/arthur-debert/ensure/internal/version"
)

func main() {
	if err := newManpageCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ensure-manpage: %v\n", err)
		os.Exit(1)
	}
}

func newManpageCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:           "ensure-manpage",
		Short:         "Generate man pages for ensure",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd.OutOrStdout(), dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Write one page per command into this directory")
	return cmd
}

func generate(out io.Writer, dir string) error {
	root := ensure.NewRootCmd()
	header := manHeader()

	if dir == "" {
		return doc.GenMan(root, header, out)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return doc.GenManTree(root, header, dir)
}

// manHeader dates the pages with the build date so release output is
// reproducible. Development builds fall back to cobra's default.
func manHeader() *doc.GenManHeader {
	header := &doc.GenManHeader{
		Title:   "ENSURE",
		Section: "1",
		Source:  "ensure " + version.Version,
		Manual:  "ensure manual",
	}
	if date, err := time.Parse(time.RFC3339, version.Date); err == nil {
		header.Date = &date
	}
	return header
}
