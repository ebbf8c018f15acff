// Command reader browses the Quran Explorer API from the terminal and manages
// the local bookmarks and display preferences.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"quran-explorer/internal/client"
	"quran-explorer/internal/config"
	"quran-explorer/internal/prefs"
)

// app carries what every subcommand needs.
type app struct {
	cfg     *config.Config
	api     *client.Client
	profile *prefs.Profile
}

func main() {
	a := &app{}
	if err := a.rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:          "reader",
		Short:        "Browse the Quran Explorer API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("api") {
				cfg.APIBaseURL = baseURL
			}
			a.cfg = cfg

			opts := &slog.HandlerOptions{Level: cfg.LogLevel}
			var handler slog.Handler
			if cfg.LogFormat == "json" {
				handler = slog.NewJSONHandler(os.Stderr, opts)
			} else {
				handler = slog.NewTextHandler(os.Stderr, opts)
			}
			slog.SetDefault(slog.New(handler))

			profile, err := prefs.Open(cfg)
			if err != nil {
				return err
			}
			a.profile = profile
			a.api = client.New(cfg.APIBaseURL, cfg.ClientTimeout, client.WithBookmarks(profile.Bookmarks))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.profile == nil {
				return nil
			}
			return a.profile.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&baseURL, "api", "", "API base URL (overrides API_BASE_URL)")

	cmd.AddCommand(
		a.surasCmd(),
		a.verseCmd(),
		a.searchCmd(),
		a.rootWordCmd(),
		a.randomCmd(),
		a.bookmarkCmd(),
		a.expandCmd(),
		a.prefsCmd(),
	)
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
