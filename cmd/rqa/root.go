// SPDX-License-Identifier: MIT
// Command rqa: root command, logging setup and configuration layering.

package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is the prefix viper strips from environment overrides:
// RQA_LOG_LEVEL=debug is equivalent to --log-level=debug.
const envPrefix = "RQA"

// rootOptions carries the persistent settings shared by every subcommand.
type rootOptions struct {
	logLevel string
	logJSON  bool
	cfgFile  string

	// log is built in PersistentPreRunE and injected into the analyzer.
	log *logrus.Logger
}

// newRootCmd wires the command tree. Subcommands receive the shared
// rootOptions so they can pick up the configured logger.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rqa",
		Short: "Recurrence quantification analysis of time series",
		Long: `rqa reconstructs a delay-embedded phase space from one or two numeric
series, thresholds the pairwise distances into a recurrence matrix, and
reports recurrence statistics (recurrence rate, determinism, laminarity,
entropy, trends) or a diagonal recurrence profile.

Series files hold whitespace-separated numbers; lines starting with '#'
are skipped. Every flag can also be set via a config file or an RQA_*
environment variable (RQA_RADIUS=0.2 matches --radius=0.2).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd, opts.cfgFile); err != nil {
				return err
			}

			return opts.setupLogger()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	pf.BoolVar(&opts.logJSON, "log-json", false, "emit logs as JSON")
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default none)")

	cmd.AddCommand(
		newAutoCmd(opts),
		newCrossCmd(opts),
		newDRPCmd(opts),
		newSynthCmd(),
	)

	return cmd
}

// loadConfig layers flag values under config-file and environment
// overrides: explicit flags win, then env (RQA_*), then the file.
func loadConfig(cmd *cobra.Command, cfgFile string) error {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config %s: %w", cfgFile, err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return bindFlags(cmd, v)
}

// bindFlags back-fills every flag the user did not set explicitly from the
// viper layer (env var or config-file key of the same name).
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := f.Value.Set(v.GetString(f.Name)); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("flag --%s: %w", f.Name, err)
		}
	})

	return bindErr
}

// setupLogger translates the persistent logging flags into a configured
// logrus instance.
func (o *rootOptions) setupLogger() error {
	lvl, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", o.logLevel, err)
	}

	log := logrus.New()
	log.SetLevel(lvl)
	if o.logJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	o.log = log

	return nil
}
