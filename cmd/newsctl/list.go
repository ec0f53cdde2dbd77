package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"newsportal/internal/articles"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		req    articles.ListRequest
		sort   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored articles with their display category",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			req.Sort = articles.ParseSort(sort)
			res, err := e.engine.List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("listing: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tPUBLISHED\tLANG\tCATEGORY\tTITLE")
			for _, v := range res.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					v.ID, v.PublishedAt.Format(time.DateOnly), v.Language, v.Category, truncate(v.Title, 60))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			approx := ""
			if res.Approximate {
				approx = ", approximate"
			}
			fmt.Fprintf(out, "page %d of %d article(s) via %s path%s\n", res.Page, res.Total, res.Path, approx)
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Language, "language", "l", "", "language filter")
	cmd.Flags().StringVarP(&req.Category, "category", "c", "", "category key, label, id or free text")
	cmd.Flags().IntVar(&req.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&req.PageSize, "page-size", 0, "page size (0 uses the configured default)")
	cmd.Flags().StringVar(&sort, "sort", "latest", "latest|oldest|popular")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
