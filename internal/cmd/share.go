package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tarush10000/Sooru-Demo/domain/share"
	"github.com/tarush10000/Sooru-Demo/internal/ui"
)

const linkTarget = "link"

// warnOpener reports browser failures on stderr before the sharer swallows
// them.
type warnOpener struct {
	next  share.Opener
	w     io.Writer
	color bool
}

func (o warnOpener) Open(u string) error {
	err := o.next.Open(u)
	if err != nil {
		fmt.Fprintf(o.w, "%s could not open a browser: %v\n", ui.RenderStatus(ui.StatusWarning, o.color), err)
	}
	return err
}

type warnClipboard struct {
	next  share.Clipboard
	w     io.Writer
	color bool
}

func (c warnClipboard) WriteText(text string) error {
	err := c.next.WriteText(text)
	if err != nil {
		fmt.Fprintf(c.w, "%s could not reach the clipboard: %v\n", ui.RenderStatus(ui.StatusWarning, c.color), err)
	}
	return err
}

func newShareCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:       "share whatsapp|twitter|link",
		Short:     "Share the demo or copy the share link",
		ValidArgs: []string{string(share.PlatformWhatsApp), string(share.PlatformTwitter), linkTarget},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShare(cmd, args[0], printOnly, share.SystemBrowser{}, share.SystemClipboard{})
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "print the URL or link instead of opening it")
	return cmd
}

func runShare(cmd *cobra.Command, target string, printOnly bool, opener share.Opener, cb share.Clipboard) error {
	out := cmd.OutOrStdout()
	color := colorEnabled()
	composer := share.NewComposer("")

	if target == linkTarget {
		link := configuredShareLink()
		if printOnly {
			fmt.Fprintln(out, link)
			return nil
		}
		sharer := share.NewSharer(composer, opener, warnClipboard{cb, cmd.ErrOrStderr(), color}, link, cliLogger())
		fmt.Fprintf(out, "%s copied %s\n", ui.RenderStatus(ui.StatusSuccess, color), sharer.CopyLink(cmd.Context()))
		return nil
	}

	if printOnly {
		p, err := share.ParsePlatform(target)
		if err != nil {
			return err
		}
		intent, err := composer.Intent(p)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, intent.URL)
		return nil
	}

	sharer := share.NewSharer(composer, warnOpener{opener, cmd.ErrOrStderr(), color}, cb, configuredShareLink(), cliLogger())
	intent, ok := sharer.Share(cmd.Context(), target)
	if !ok {
		return fmt.Errorf("%w: %q", share.ErrUnsupportedPlatform, target)
	}
	fmt.Fprintf(out, "%s %s share: %s\n", ui.RenderStatus(ui.StatusInfo, color), intent.Platform.Label(), intent.URL)
	return nil
}

func init() {
	rootCmd.AddCommand(newShareCmd())
}
