// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-gaps/internal/extract"
	"github.com/pdiddy/research-gaps/internal/report"
	"github.com/pdiddy/research-gaps/internal/segment"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract limitations and future work from a full-text file",
	Long: `Extract reads a paper's full text from a file (or standard input when the
file is omitted or "-") and prints the limitations and future work it
discusses. No API key is needed.

Use --detail to list every matching section and whether it was found by its
heading or by individual sentences.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

var sectionsCmd = &cobra.Command{
	Use:   "sections [file]",
	Short: "Show how a full-text file is split into sections",
	Long: `Sections reads a paper's full text from a file (or standard input) and
lists the sections the segmenter finds: paragraphs are split on blank lines,
and short upper-case or numbered paragraphs start a new section.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSections,
}

func init() {
	extractCmd.Flags().Bool("detail", false, "list individual matches and how they were found")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(sectionsCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, format, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	if detail, _ := cmd.Flags().GetBool("detail"); detail {
		return report.WriteDetail(cmd.OutOrStdout(), extract.Detailed(text), format)
	}
	return report.WriteResult(cmd.OutOrStdout(), extract.Sections(text), format)
}

func runSections(cmd *cobra.Command, args []string) error {
	text, format, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	return report.WriteSections(cmd.OutOrStdout(), segment.Split(text), format)
}

// readInput returns the full text named by args (stdin for none or "-")
// and the requested output format.
func readInput(cmd *cobra.Command, args []string) (string, report.Format, error) {
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return "", "", err
	}

	var data []byte
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading standard input: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
	}
	return string(data), format, nil
}
