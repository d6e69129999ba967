package cmd

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gideora/website/internal/config"
	"github.com/gideora/website/internal/content"
	"github.com/gideora/website/internal/preview"
)

func newPreviewCommand() *cobra.Command {
	var portalURL string
	var debugLog string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the landing page in the terminal",
		Long: `Renders the landing page as text. Scroll with the arrow keys, page keys or
the mouse wheel; the navbar and the portal button react the same way they do
in the browser.

Keys: m toggles the mobile menu, p opens the portal, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if portalURL == "" {
				cfg, err := config.Parse()
				if err != nil {
					return err
				}
				portalURL = cfg.PortalURL
			}

			// The alt screen owns stdout, so logs go to a file or nowhere.
			var w io.Writer = io.Discard
			if debugLog != "" {
				f, err := os.OpenFile(debugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))

			site := content.New(portalURL, time.Now())
			return preview.Run(cmd.Context(), site, log)
		},
	}

	cmd.Flags().StringVar(&portalURL, "portal", "", "portal URL (defaults to PORTAL_URL)")
	cmd.Flags().StringVar(&debugLog, "debug-log", "", "write controller transitions to this file")
	return cmd
}
