package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tarush10000/Sooru-Demo/domain/estimate"
	"github.com/tarush10000/Sooru-Demo/domain/navigation"
	"github.com/tarush10000/Sooru-Demo/domain/plan"
	"github.com/tarush10000/Sooru-Demo/domain/share"
	"github.com/tarush10000/Sooru-Demo/internal/content"
	"github.com/tarush10000/Sooru-Demo/internal/tui"
)

func newDemoCmd() *cobra.Command {
	var (
		skipIntro bool
		noFade    bool
		start     string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through the five-step design demo in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := navigation.ParseScreen(start)
			if err != nil {
				return err
			}
			if skipIntro {
				screen = navigation.ScreenDemo
			}

			catalog, err := content.Load()
			if err != nil {
				return err
			}

			log := cliLogger()
			composer := share.NewComposer("")
			svc := estimate.NewService(plan.NewAnalyzer(nil), composer, false, log)
			sharer := share.NewSharer(composer, share.SystemBrowser{}, share.SystemClipboard{}, configuredShareLink(), log)

			opts := tui.Options{Delay: navigation.TransitionDelay, Color: colorEnabled(), Screen: screen}
			if noFade {
				opts.Delay = 0
			}

			p := tea.NewProgram(tui.New(svc, sharer, catalog, opts), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipIntro, "skip-intro", false, "start at the demo instead of the landing screen")
	cmd.Flags().StringVar(&start, "start", string(navigation.ScreenLanding), "screen to open on (landing, solutions, features, demo)")
	cmd.Flags().BoolVar(&noFade, "no-fade", false, "switch screens without the fade")
	return cmd
}

func init() {
	rootCmd.AddCommand(newDemoCmd())
}
