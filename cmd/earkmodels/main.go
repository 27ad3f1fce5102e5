// Command earkmodels validates archival metadata documents and whole SIP
// packages against the meemoo profiles.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type config struct {
	// Default document profile for the validate command.
	Format string `yaml:"format"`
	// Report style: json or text.
	Report string `yaml:"report"`
}

func defaultConfig() config {
	return config{Format: "premis", Report: "text"}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zc.DisableStacktrace = true
	return zc.Build()
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool

		cfg config
		log *zap.Logger
	)
	root := &cobra.Command{
		Use:           "earkmodels",
		Short:         "Validate meemoo archival metadata (PREMIS, MODS, DC+schema, SIP)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = loadConfig(configPath); err != nil {
				return err
			}
			if log, err = newLogger(verbose); err != nil {
				return err
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a yaml config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newValidateCmd(&cfg, func() *zap.Logger { return log }))
	root.AddCommand(newSIPCmd(&cfg, func() *zap.Logger { return log }))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "earkmodels:", err)
		os.Exit(1)
	}
}
