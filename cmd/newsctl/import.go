package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newsportal/internal/ingest"
	"newsportal/pkg/utils"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var (
		csvPath string
		feed    utils.FeedConfig
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import articles from feeds or a CSV export",
		Long: `Without flags, import fetches every feed listed in the config file.
--feed imports a single ad-hoc feed instead, and --csv reads a file written
by "newsctl export". Existing articles are updated in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			out := cmd.OutOrStdout()

			if csvPath != "" {
				f, err := os.Open(csvPath)
				if err != nil {
					return fmt.Errorf("opening csv: %w", err)
				}
				defer f.Close()

				items, err := readArticlesCSV(f)
				if err != nil {
					return fmt.Errorf("reading %s: %w", csvPath, err)
				}
				created, err := e.repo.UpsertMany(cmd.Context(), items)
				if err != nil {
					return fmt.Errorf("importing: %w", err)
				}
				fmt.Fprintf(out, "imported %d article(s): %d new, %d updated\n",
					len(items), len(created), len(items)-len(created))
				return nil
			}

			feeds := e.cfg.Feeds
			if feed.URL != "" {
				feeds = []utils.FeedConfig{feed}
			}
			if len(feeds) == 0 {
				return fmt.Errorf("no feeds configured; pass --feed or --csv")
			}

			im := &ingest.Importer{
				Aggregator: ingest.NewAggregator(e.log, ingest.SourcesFromConfig(feeds)...),
				Store:      e.repo,
				Log:        e.log,
			}
			rep, err := im.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "fetched %d item(s), %d after merge: %d new, %d updated\n",
				rep.Fetched, rep.Merged, rep.Created, rep.Updated)
			for _, name := range rep.Failed {
				fmt.Fprintf(out, "failed: %s\n", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file to import")
	cmd.Flags().StringVar(&feed.URL, "feed", "", "feed URL to import instead of the configured feeds")
	cmd.Flags().StringVar(&feed.Name, "name", "", "source name for --feed")
	cmd.Flags().StringVar(&feed.Language, "language", "", "language for --feed items")
	cmd.Flags().StringVar(&feed.Category, "category", "", "category stamped on --feed items")
	cmd.MarkFlagsMutuallyExclusive("csv", "feed")
	return cmd
}
