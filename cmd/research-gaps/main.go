// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-gaps CLI. It searches the
// CORE API for papers and reports the limitations and future work each paper
// discusses.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/research-gaps/internal/secrets"
	"github.com/pdiddy/research-gaps/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// loadedSecrets holds API keys loaded from the secrets directory at startup.
	loadedSecrets secrets.Store

	// logger receives structured diagnostics; a no-op unless --verbose.
	logger = zap.NewNop()
)

// rootCmd is the base command for the research-gaps CLI.
var rootCmd = &cobra.Command{
	Use:   "research-gaps",
	Short: "Find limitations and future work in academic papers",
	Long: `research-gaps queries the CORE search API for papers and extracts the
"Limitations" and "Future Work" discussion from each paper's full text.

Extraction is heuristic: sections whose heading names the topic are taken
whole; otherwise individual sentences mentioning it are taken with one
sentence of context either side.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			logger = l
		}

		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		loadedSecrets = s
		if names := s.Names(); len(names) > 0 {
			logger.Debug("loaded secrets", zap.Strings("names", names))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./research-gaps.yaml or ~/.config/research-gaps/config.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets/", "directory of secret files (core-api-key)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log HTTP requests and retries to stderr")
	rootCmd.PersistentFlags().String("format", "text", "output format: text, json, or yaml")

	setDefaults(viper.GetViper())
}

// setDefaults registers every configuration key so that environment
// variables are picked up by Unmarshal even when no config file sets them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("core.base_url", types.DefaultCoreBaseURL)
	v.SetDefault("core.api_key", "")
	v.SetDefault("core.limit", types.DefaultCoreLimit)
	v.SetDefault("http.timeout", types.DefaultTimeout)
	v.SetDefault("http.user_agent", types.DefaultUserAgent)
	v.SetDefault("http.max_retries", 0)
	v.SetDefault("display.max_papers", types.DefaultMaxPapers)
	v.SetDefault("display.truncate", types.DefaultTruncate)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-gaps")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-gaps"))
		}
	}

	viper.SetEnvPrefix("RESEARCH_GAPS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, environment, and file settings.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg.WithDefaults(), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
