package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"newsportal/internal/articles"
)

const exportBatch = 500

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		outPath  string
		language string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write articles and their resolved category to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if outPath == "" || outPath == "-" {
				_, err := exportArticles(cmd, e, cmd.OutOrStdout(), language)
				return err
			}

			var n int
			err = writeFile(outPath, func(w io.Writer) (err error) {
				n, err = exportArticles(cmd, e, w, language)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d article(s) to %s\n", n, outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output CSV path (default stdout)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "only export this stored language value")
	return cmd
}

func exportArticles(cmd *cobra.Command, e *env, w io.Writer, language string) (int, error) {
	ctx := cmd.Context()
	lookup, err := e.engine.Lookup(ctx)
	if err != nil {
		return 0, err
	}
	resolver := e.engine.Resolver()

	cw := newArticleCSVWriter(w)
	q := articles.Query{Sort: articles.SortOldest, Limit: exportBatch}
	if language != "" {
		q.Languages = []string{language}
	}
	n := 0
	for {
		batch, err := e.repo.Find(ctx, q)
		if err != nil {
			return n, fmt.Errorf("exporting: %w", err)
		}
		for _, a := range batch {
			if err := cw.Write(articles.View(resolver, a, lookup, "")); err != nil {
				return n, err
			}
		}
		n += len(batch)
		if len(batch) < exportBatch {
			break
		}
		q.Offset += exportBatch
	}
	return n, cw.Flush()
}

// writeFile creates path and hands it to write. A failed close is reported
// since the last buffered bytes may not have reached the disk.
func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
