package cmd

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/tarush10000/Sooru-Demo/domain/estimate"
	"github.com/tarush10000/Sooru-Demo/domain/health"
	"github.com/tarush10000/Sooru-Demo/domain/scheduler"
	"github.com/tarush10000/Sooru-Demo/domain/session"
	"github.com/tarush10000/Sooru-Demo/domain/site"
	"github.com/tarush10000/Sooru-Demo/domain/tracing"
	"github.com/tarush10000/Sooru-Demo/internal/config"
	"github.com/tarush10000/Sooru-Demo/internal/server"
	"github.com/tarush10000/Sooru-Demo/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web site and JSON API",
	Long: `Start the HTTP server. Settings come from the environment; .env and
.env.local in the working directory are loaded first, with .env.local taking
precedence.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadDotEnv()
		app := fx.New(serveOptions()...)
		if err := app.Err(); err != nil {
			return err
		}
		app.Run()
		return nil
	},
}

// loadDotEnv reads .env then .env.local. Load never overwrites variables
// already set; Overload lets the local file win over .env.
func loadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// serveOptions is the server's module graph.
func serveOptions() []fx.Option {
	return []fx.Option{
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure
		logger.Module,
		config.Module,
		server.Module,
		tracing.Module,
		scheduler.Module,

		// Domain
		session.Module,
		estimate.Module,
		site.Module,
		health.Module,
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
