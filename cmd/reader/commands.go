package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"quran-explorer/internal/client"
	"quran-explorer/internal/prefs"
	"quran-explorer/internal/storage"
)

func (a *app) surasCmd() *cobra.Command {
	var (
		byRevelation bool
		place        string
	)

	cmd := &cobra.Command{
		Use:   "suras [number]",
		Short: "List chapters or show one chapter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				number, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid chapter number %q", args[0])
				}
				sura, err := a.api.GetSura(ctx, number)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), sura)
			}

			var (
				suras []storage.Sura
				err   error
			)
			switch {
			case place != "":
				suras, err = a.api.ListSurasByRevelationPlace(ctx, place)
			case byRevelation:
				suras, err = a.api.ListSurasByRevelationOrder(ctx)
			default:
				suras, err = a.api.ListSuras(ctx)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), suras)
		},
	}

	cmd.Flags().BoolVar(&byRevelation, "revelation-order", false, "Sort by revelation order")
	cmd.Flags().StringVar(&place, "place", "", "Filter by revelation place")
	return cmd
}

func (a *app) verseCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "verse <sura:aya | sura>",
		Short: "Show a verse, or every verse of a chapter with --all",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if all {
				number, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid chapter number %q", args[0])
				}
				verses, err := a.api.ListVersesBySura(ctx, number)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), verses)
			}

			verse, err := a.api.GetVerseByID(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), verse)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every verse of the chapter")
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	var params client.SearchParams

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search verse texts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Query = args[0]
			resp, err := a.api.SearchVerses(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&params.Language, "lang", "all", "Language to search: all, ar or fr")
	cmd.Flags().IntVar(&params.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 20, "Results per page")
	return cmd
}

func (a *app) rootWordCmd() *cobra.Command {
	var (
		withContext bool
		page, limit int
	)

	cmd := &cobra.Command{
		Use:   "root <root>",
		Short: "List words sharing a root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if withContext {
				resp, err := a.api.RootOccurrences(ctx, args[0], page, limit)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			}
			resp, err := a.api.ListWordsByRoot(ctx, args[0], page, limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().BoolVar(&withContext, "context", false, "Include the verse of each occurrence")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "Results per page (server default when 0)")
	return cmd
}

func (a *app) randomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random long verse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), a.api.RandomVerse(cmd.Context()))
		},
	}
}

func (a *app) bookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Manage bookmarked verses",
	}

	var resolve bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if resolve {
				return printJSON(cmd.OutOrStdout(), a.api.LoadBookmarkedVerses(ctx))
			}
			return printJSON(cmd.OutOrStdout(), a.profile.Bookmarks.List(ctx))
		},
	}
	list.Flags().BoolVar(&resolve, "resolve", false, "Fetch the bookmarked verses")

	toggle := &cobra.Command{
		Use:   "toggle <sura:aya>",
		Short: "Bookmark a verse, or remove it if already bookmarked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sura, aya, err := prefs.ParseVerseID(args[0])
			if err != nil {
				return err
			}
			on, err := a.profile.Bookmarks.Toggle(cmd.Context(), sura, aya)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"id": args[0], "bookmarked": on})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every bookmark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.profile.Bookmarks.Clear(cmd.Context())
		},
	}

	cmd.AddCommand(list, toggle, clearCmd)
	return cmd
}

func (a *app) expandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Manage verses shown with word-by-word details",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:  "list",
			Args: cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printJSON(cmd.OutOrStdout(), a.profile.Expanded.List(cmd.Context()))
			},
		},
		&cobra.Command{
			Use:  "toggle <verse-id>",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				on, err := a.profile.Expanded.Toggle(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"id": args[0], "expanded": on})
			},
		},
		&cobra.Command{
			Use:  "set <verse-id>...",
			Args: cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.profile.Expanded.SetAll(cmd.Context(), args)
			},
		},
		&cobra.Command{
			Use:  "reset",
			Args: cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.profile.Expanded.Reset(cmd.Context())
			},
		},
	)
	return cmd
}

func (a *app) prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change display preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), a.profile.Preferences.Get(cmd.Context()))
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "font <arabic|translation> <size>",
			Short: "Set a font size in rem",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				size, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("invalid font size %q", args[1])
				}
				return a.profile.Preferences.SetFontSize(cmd.Context(), args[0], size)
			},
		},
		&cobra.Command{
			Use:   "mode <standard|reading|side-by-side>",
			Short: "Set the display mode",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.profile.Preferences.SetDisplayMode(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "theme <light|dark>",
			Short: "Set the theme",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.profile.Preferences.SetTheme(cmd.Context(), args[0])
			},
		},
	)
	return cmd
}
