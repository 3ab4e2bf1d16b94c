// Package cmd provides the pricectl commands: offline quotes and the
// classification backfill for stored offerings.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Andydrums87/bookabash-sub001/internal/config"
	"github.com/Andydrums87/bookabash-sub001/internal/observability"
)

const envPrefix = "PRICECTL"

// Version is stamped at build time.
//
//nolint:gochecknoglobals // set via -ldflags
var Version = "dev"

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd(viper.New()).Execute()
}

// NewRootCmd builds the command tree around the given viper instance.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "pricectl",
		Short: "Price party supplier offerings from the command line",
		Long: `pricectl runs the booking price calculator outside the web app.

Examples:
  pricectl quote --file scenario.json
  pricectl quote --file scenario.json --format text
  pricectl classify --dry-run
  pricectl classify --force --redis-addr redis:6379`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}

			level := "warn"
			if v.GetBool("verbose") {
				level = "debug"
			}
			if _, err := observability.InitLogger(&config.LogConfig{Level: level}); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pricectl.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	_ = v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(newQuoteCmd())
	root.AddCommand(newClassifyCmd(v))
	root.AddCommand(newVersionCmd())

	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil //nolint:nilerr // no home directory means no default config file
	}
	v.AddConfigPath(home)
	v.SetConfigType("yaml")
	v.SetConfigName(".pricectl")

	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pricectl version %s\n", Version)
		},
	}
}
