// Package cmd implements the sooru command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tarush10000/Sooru-Demo/domain/share"
	"github.com/tarush10000/Sooru-Demo/internal/ui"
	"github.com/tarush10000/Sooru-Demo/pkg/logger"
)

const envPrefix = "SOORU"

var (
	cfgFile   string
	shareLink string
	debug     bool
	noColor   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sooru",
	Short: "Sooru.AI demo site and terminal walkthrough",
	Long: `Sooru.AI turns a four-field house plan into a cost estimate, an analysis
and a shareable design.

Run "sooru serve" for the web site, "sooru demo" for the same walkthrough in
the terminal, or "sooru estimate" for a one-off cost breakdown.`,
	SilenceUsage: true,
}

// NewRootCommand returns the root command.
func NewRootCommand() *cobra.Command {
	return rootCmd
}

// Execute runs the root command. It is called by main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sooru/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&shareLink, "share-link", share.DefaultLink, "link placed on the clipboard by copy-link actions")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	_ = viper.BindPFlag("share-link", rootCmd.PersistentFlags().Lookup("share-link"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".sooru"))
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("debug") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// cliLogger logs to stderr at debug level with --debug and is silent
// otherwise.
func cliLogger() *slog.Logger {
	if viper.GetBool("debug") {
		return logger.New(os.Stderr, "debug", false)
	}
	return logger.Discard()
}

func colorEnabled() bool {
	return ui.Colors(viper.GetBool("no-color"))
}

func configuredShareLink() string {
	if l := viper.GetString("share-link"); l != "" {
		return l
	}
	return share.DefaultLink
}
