package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TrustedSmartChain/hbarsign/app"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/client/cli"
)

const flagConfig = "config"

// NewRootCmd creates the hbarsignd root command with every review command
// attached.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "hbarsignd",
		Short:         "Review Hedera transactions the way a hardware signer does",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cmd, v); err != nil {
				return err
			}

			logger, err := app.NewLogger(cmd.ErrOrStderr(), v)
			if err != nil {
				return err
			}
			hbarsignApp, err := app.New(logger, v)
			if err != nil {
				return err
			}

			cli.SetCmdClientContext(cmd, cli.ClientContext{
				Keeper:   hbarsignApp.HbarsignKeeper,
				Gatherer: hbarsignApp.Gatherer(),
			})
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, "", "config file (yaml, toml or json)")
	flags.String(app.FlagLogLevel, app.DefaultLogLevel, "log level (trace|debug|info|warn|error)")
	flags.String(app.FlagLogFormat, app.LogFormatPlain, "log format (plain|json)")
	flags.Bool(app.FlagMetricsEnabled, false, "collect review metrics")

	rootCmd.AddCommand(cli.GetCommands()...)
	return rootCmd
}

// initConfig layers, from lowest to highest priority, the config file, the
// HBARSIGN_* environment and the command line flags.
func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix(app.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}
