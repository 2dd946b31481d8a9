package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/hr-toolkit/internal/config"
	"alfredoptarigan/hr-toolkit/internal/logger"
	"alfredoptarigan/hr-toolkit/internal/services"
)

const app = "hrtool"

var (
	cfgFile string
	v       = config.New()

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "hrtool scores resumes against job descriptions and analyzes employee feedback",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("model", "", "Gemini model name (overrides GEMINI_MODEL)")

	mustBind("log_debug", "debug")
	mustBind("log_json", "json")
	mustBind("gemini_model", "model")
}

func mustBind(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		log.Fatalf("binding --%s flag: %v", flag, err)
	}
}

// session holds what every subcommand needs to talk to the model.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	model  services.ModelClient
}

func setup(ctx context.Context) (*session, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}

	l, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	gemini, err := services.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, l)
	if err != nil {
		return nil, fmt.Errorf("initializing Gemini client: %w", err)
	}

	return &session{cfg: cfg, logger: l, model: gemini}, nil
}

// newLogger writes logs to stderr so stdout carries only the JSON result.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log.JSON, cfg.Log.Debug, logger.Stderr)
}

func printJSON(w io.Writer, value any) error {
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(pretty))
	return err
}
