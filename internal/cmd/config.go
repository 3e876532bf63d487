package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tarush10000/Sooru-Demo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect CLI and server configuration",
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the CLI settings resolved from flags, SOORU_* variables and the config
file, followed by the server settings "sooru serve" would start with.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			configFile := viper.ConfigFileUsed()
			if configFile == "" {
				configFile = "(none)"
			}

			fmt.Fprintln(out, "CLI:")
			table := tablewriter.NewWriter(out)
			table.Header("Setting", "Value")
			table.Append("Config File", configFile)
			table.Append("Share Link", configuredShareLink())
			table.Append("Debug", fmt.Sprintf("%v", viper.GetBool("debug")))
			table.Append("Color", fmt.Sprintf("%v", colorEnabled()))
			if err := table.Render(); err != nil {
				return err
			}

			loadDotEnv()
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load server config: %w", err)
			}

			fmt.Fprintln(out, "\nServer:")
			table = tablewriter.NewWriter(out)
			table.Header("Setting", "Value")
			table.Append("Address", cfg.Addr())
			table.Append("Environment", cfg.Environment)
			table.Append("Log Level", cfg.LogLevel)
			table.Append("Session TTL", cfg.Session.TTL.String())
			table.Append("Session Sweep", cfg.Session.SweepInterval.String())
			table.Append("Rate Limit", fmt.Sprintf("%d/min (burst %d)", cfg.API.RateLimitPerMinute, cfg.API.RateLimitBurst))
			table.Append("Strict Options", fmt.Sprintf("%v", cfg.API.StrictOptions))
			table.Append("Theme", cfg.Site.Theme)
			table.Append("Share Link", cfg.Site.ShareLink)
			table.Append("Metrics", fmt.Sprintf("%v", cfg.MetricsEnabled))
			table.Append("Tracing", fmt.Sprintf("%v", cfg.Tracing.Enabled()))
			return table.Render()
		},
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(newConfigShowCmd())
}
