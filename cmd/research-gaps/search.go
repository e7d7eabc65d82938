// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-gaps/internal/report"
	"github.com/pdiddy/research-gaps/internal/search"
	"github.com/pdiddy/research-gaps/internal/secrets"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search CORE and extract limitations and future work",
	Long: `Search sends the query to the CORE works search API, keeps the papers
that include full text, and reports the limitations and future work found in
the first few of them. Only the first page of results is fetched.

The query uses CORE's syntax, for example:

  research-gaps search healthcare
  research-gaps search 'fullText:"limitations" AND fullText:"future work"'

The API key is read from --api-key, RESEARCH_GAPS_CORE_API_KEY, core.api_key
in the config file, or .secrets/core-api-key, in that order.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("api-key", "", "CORE API key")
	searchCmd.Flags().String("base-url", "", "CORE works search endpoint")
	searchCmd.Flags().Int("limit", 0, "number of results to request (default 10)")
	searchCmd.Flags().Int("max-papers", 0, "number of papers with full text to report on (default 5)")
	searchCmd.Flags().Int("truncate", 0, "characters shown per field in text output, -1 for no limit (default 500)")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	bindFlags(viper.GetViper(), searchCmd, map[string]string{
		"core.api_key":       "api-key",
		"core.base_url":      "base-url",
		"core.limit":         "limit",
		"display.max_papers": "max-papers",
		"display.truncate":   "truncate",
		"http.timeout":       "timeout",
	})

	rootCmd.AddCommand(searchCmd)
}

// bindFlags makes flags override config keys when they are set explicitly.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, flag := range keys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag --%s: %v", flag, err))
		}
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("provide a search query, e.g. research-gaps search healthcare")
	}

	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	cfg.Core.APIKey = secrets.First(cfg.Core.APIKey, loadedSecrets.Get(secrets.CoreAPIKey))
	if cfg.Core.APIKey == "" {
		return fmt.Errorf("%w: use --api-key, RESEARCH_GAPS_CORE_API_KEY, or .secrets/%s",
			search.ErrMissingAPIKey, secrets.CoreAPIKey)
	}

	// Progress lines go to stdout for the text view and stderr otherwise,
	// so JSON and YAML output stay machine-readable.
	status := cmd.ErrOrStderr()
	if format == report.FormatText {
		status = cmd.OutOrStdout()
	}

	client := search.NewClient(cfg, logger)

	fmt.Fprintf(status, "Searching for: %s\n", query)
	resp, err := client.Search(cmd.Context(), search.Query{Text: query})
	if err != nil {
		return err
	}
	writeSearchSummary(status, resp)

	reports := report.Analyze(resp.WithFullText(), cfg.Display.MaxPapers)
	return report.Write(cmd.OutOrStdout(), reports, format, cfg.Display.Truncate)
}

func writeSearchSummary(w io.Writer, resp search.Response) {
	fmt.Fprintf(w, "Request took %.3f seconds\n", resp.Elapsed.Seconds())
	fmt.Fprintf(w, "Total results found: %d\n", resp.TotalHits)
	fmt.Fprintf(w, "Found %d papers with full text\n", len(resp.WithFullText()))
}
