package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/GuralTOO/ai-chaperone/internal/config"
	"github.com/GuralTOO/ai-chaperone/internal/engine"
	"github.com/GuralTOO/ai-chaperone/internal/keywords"
	"github.com/GuralTOO/ai-chaperone/internal/logging"
	"github.com/GuralTOO/ai-chaperone/internal/output"
	"github.com/GuralTOO/ai-chaperone/internal/output/file"
	"github.com/GuralTOO/ai-chaperone/internal/output/multi"
	"github.com/GuralTOO/ai-chaperone/internal/output/stdout"
	"github.com/GuralTOO/ai-chaperone/internal/pipeline"
)

func moderateCmd() *cobra.Command {
	var (
		cfgFile    string
		transcript string
	)

	cmd := &cobra.Command{
		Use:   "moderate --transcript call.vtt --keywords keywords.csv",
		Short: "Moderate a transcript against a keyword dictionary",
		Long: `Parse a WebVTT transcript, scan every utterance against the keyword
dictionary, and write the violation report as JSON to stdout and/or a
results file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, cfgFile)
			if err != nil {
				return err
			}
			if transcript == "" {
				return fmt.Errorf("--transcript is required")
			}
			if cfg.KeywordsPath == "" {
				return fmt.Errorf("keyword table required (--keywords or CHAPERONE_KEYWORDS_PATH)")
			}

			reportOnStdout := cfg.Output.Path == ""
			logging.Init(reportOnStdout, logging.ParseLevel(cfg.LogLevel))

			start := time.Now()
			rows, err := keywords.LoadFile(cfg.KeywordsPath)
			if err != nil {
				return err
			}
			dict := keywords.NewDictionary(rows)
			eng := engine.New(dict, engine.WithWorkers(cfg.Engine.Workers))
			slog.Info("dictionary ready",
				"rows", len(rows),
				"entries", dict.Len(),
				"elapsed", time.Since(start))

			out, err := buildOutputs(cfg.Output)
			if err != nil {
				return err
			}

			p := pipeline.New(eng, out)
			defer p.Close()

			if _, err := p.RunFile(cmd.Context(), transcript); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "YAML config file overlaying CHAPERONE_* env vars")
	cmd.Flags().StringVar(&transcript, "transcript", "", "WebVTT transcript to moderate")
	cmd.Flags().String("keywords", "", "keyword CSV table")
	cmd.Flags().String("out", "", "append the report to this NDJSON file instead of stdout")
	cmd.Flags().Int("workers", 0, "parallel utterance scanners (default: serial)")
	cmd.Flags().String("verbosity", "", "report verbosity: minimal or standard")
	cmd.Flags().Bool("pretty", false, "pretty-print the JSON report on stdout")
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")

	return cmd
}

// loadConfig resolves configuration: env vars first, YAML overlay when
// --config is set, explicit flags last.
func loadConfig(cmd *cobra.Command, cfgFile string) (config.Config, error) {
	var cfg config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
		if err != nil {
			return config.Config{}, err
		}
	} else {
		cfg = config.Load()
	}

	flags := cmd.Flags()
	if flags.Changed("keywords") {
		cfg.KeywordsPath, _ = flags.GetString("keywords")
	}
	if flags.Changed("out") {
		cfg.Output.Path, _ = flags.GetString("out")
	}
	if flags.Changed("workers") {
		cfg.Engine.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("verbosity") {
		cfg.Output.Verbosity, _ = flags.GetString("verbosity")
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty, _ = flags.GetBool("pretty")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg, nil
}

// buildOutputs assembles the report destination: stdout when no results file
// is configured, the file alone otherwise, both when pretty stdout output is
// also requested alongside a file.
func buildOutputs(cfg config.OutputConfig) (output.Output, error) {
	verbosity := output.ParseVerbosity(cfg.Verbosity)

	if cfg.Path == "" {
		return stdout.New(verbosity, cfg.Pretty), nil
	}

	f, err := file.New(cfg.Path, verbosity)
	if err != nil {
		return nil, err
	}
	if cfg.Pretty {
		return multi.New(f, stdout.New(verbosity, true)), nil
	}
	return f, nil
}
