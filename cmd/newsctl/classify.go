package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"newsportal/internal/classify"
)

func newClassifyCmd() *cobra.Command {
	var (
		title, summary, language string
		asJSON, explain          bool
	)
	cmd := &cobra.Command{
		Use:   "classify [content...]",
		Short: "Score text against the keyword dictionary",
		Long: `Classify prints the winning category and its score for the given text.
Content is taken from the arguments, or from stdin when there are none.`,
		Example: `  newsctl classify --language te "క్రికెట్ మ్యాచ్"
  echo "Police arrested two men" | newsctl classify --explain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args, " ")
			if content == "" && title == "" && summary == "" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				content = string(b)
			}

			ex := classify.DefaultScorer().Explain(title, summary, content, language)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(ex)
			}

			fmt.Fprintf(out, "%s\t%d\t(%s)\n", ex.Category, ex.Score, ex.Language)
			if explain && len(ex.Matches) > 0 {
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "CATEGORY\tKEYWORD\tSTEM\tWEIGHT\tKIND")
				for _, m := range ex.Matches {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", m.Category, m.Keyword, m.Stem, m.Weight, m.Kind)
				}
				return tw.Flush()
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "article title")
	cmd.Flags().StringVar(&summary, "summary", "", "article summary")
	cmd.Flags().StringVarP(&language, "language", "l", "en", "language code or name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full explanation as JSON")
	cmd.Flags().BoolVar(&explain, "explain", false, "list matched keywords")
	return cmd
}
