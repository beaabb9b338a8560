package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cmsselect/internal/app"
	"cmsselect/internal/config"
	"cmsselect/internal/domain/models"
	"cmsselect/internal/i18n"
	"cmsselect/internal/render"
	"cmsselect/internal/selection"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "selectctl",
		Short:         "Inspect CMS selector values and listings",
		SilenceUsage: true,
	}
	root.AddCommand(newDecodeCmd(), newRenderCmd())
	return root
}

func newDecodeCmd() *cobra.Command {
	var kind string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode [value]",
		Short: "Decode a stored selection string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec := selection.Universal
			if kind != "" {
				k, err := selection.ParseKind(kind)
				if err != nil {
					return err
				}
				codec = selection.CodecFor(k)
			}

			tokens := codec.DecodeMany(args[0])
			out := cmd.OutOrStdout()
			if asJSON {
				if tokens == nil {
					tokens = []selection.Token{}
				}
				return writeJSON(out, tokens)
			}
			for _, t := range tokens {
				fmt.Fprintf(out, "%s\t%s\n", t.Kind, selection.Encode(t))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "selector kind (category, category-article, content-slot, upload-file, dbfs-file)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print tokens as JSON")
	return cmd
}

type renderFlags struct {
	clientID, languageID int
	selected             string
	articles             string
	category             string
	path                 string
	types                string
	fileTypes            []string
	startLevel           int
	withArticles         bool
	disableCategories    bool
	includeOffline       bool
	noDirectories        bool
	filterEmpty          bool
	format               string
	name                 string
	multiple             bool
}

func newRenderCmd() *cobra.Command {
	f := &renderFlags{}

	cmd := &cobra.Command{
		Use:       "render {categories|articles|content-slots|files}",
		Short:     "Render a selector against the configured database",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"categories", "articles", "content-slots", "files"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Debug)

			a, err := app.Bootstrap(cmd.Context(), cfg, nil, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			listing, err := f.render(cmd, a, args[0])
			if err != nil {
				return err
			}
			return f.print(cmd.OutOrStdout(), a, listing)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.clientID, "client", 1, "client id")
	fl.IntVar(&f.languageID, "lang", 1, "language id")
	fl.StringVar(&f.selected, "selected", "", "stored selection string")
	fl.StringVar(&f.articles, "articles", "", "selected articles (categories, content-slots)")
	fl.StringVar(&f.category, "category", "", "category id or idcat:<id> (articles)")
	fl.StringVar(&f.path, "path", "", "start path (files)")
	fl.StringVar(&f.types, "types", "", "content type id allow-list (content-slots)")
	fl.StringSliceVar(&f.fileTypes, "file-types", nil, "file extensions or glob patterns (files)")
	fl.IntVar(&f.startLevel, "start-level", 0, "list categories below this level only, 0 for all")
	fl.BoolVar(&f.withArticles, "with-articles", false, "list articles below their category")
	fl.BoolVar(&f.disableCategories, "disable-categories", false, "make categories unselectable")
	fl.BoolVar(&f.includeOffline, "include-offline", false, "include offline articles")
	fl.BoolVar(&f.noDirectories, "no-directories", false, "make directories unselectable (files)")
	fl.BoolVar(&f.filterEmpty, "filter-empty", false, "hide directories without files (files)")
	fl.StringVar(&f.format, "format", "text", "output format: text, json or html")
	fl.StringVar(&f.name, "name", "selection", "field name (html)")
	fl.BoolVar(&f.multiple, "multiple", false, "render a multi-select (html)")
	return cmd
}

func (f *renderFlags) render(cmd *cobra.Command, a *app.App, which string) (*models.Listing, error) {
	ctx := cmd.Context()
	opts := models.SelectorOptions{
		StartLevel:           f.startLevel,
		WithArticles:         f.withArticles,
		DisableCategories:    f.disableCategories,
		IncludeOffline:       f.includeOffline,
		TypeRange:            f.types,
		FilterEmptyDirectory: f.filterEmpty,
		FileTypes:            f.fileTypes,
	}
	if f.noDirectories {
		selectable := false
		opts.DirectoryIsSelectable = &selectable
	}

	switch which {
	case "categories":
		sel, err := a.Factory.Categories(f.clientID, f.languageID)
		if err != nil {
			return nil, err
		}
		return sel.Render(ctx, f.selected, f.articles, opts)
	case "articles":
		sel, err := a.Factory.Articles(f.clientID, f.languageID)
		if err != nil {
			return nil, err
		}
		return sel.Render(ctx, f.category, f.selected, opts)
	case "content-slots":
		sel, err := a.Factory.ContentSlots(f.clientID, f.languageID)
		if err != nil {
			return nil, err
		}
		return sel.Render(ctx, f.articles, f.selected, opts)
	default:
		sel, err := a.Factory.Files(f.clientID, f.languageID)
		if err != nil {
			return nil, err
		}
		return sel.Render(ctx, f.path, f.selected, opts)
	}
}

func (f *renderFlags) print(w io.Writer, a *app.App, listing *models.Listing) error {
	switch f.format {
	case "json":
		return writeJSON(w, listing)
	case "html":
		locale := ""
		if info, err := a.Clients.Get(f.clientID); err == nil {
			locale = info.Locale(f.languageID)
		}
		tag := a.Translator.Match(locale)
		markup, err := render.String(listing, render.Field{
			Name:        f.name,
			Multiple:    f.multiple,
			OptionLabel: a.Translator.Translate(tag, i18n.MsgPleaseChoose),
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, markup)
		return err
	case "text":
		writeText(w, listing)
		return nil
	default:
		return fmt.Errorf("unknown format %q", f.format)
	}
}

func writeText(w io.Writer, listing *models.Listing) {
	if listing.Disabled {
		fmt.Fprintln(w, "(disabled: no entries)")
		return
	}
	for _, n := range listing.Nodes {
		mark := "   "
		switch {
		case n.Selected && n.Selectable:
			mark = "[x]"
		case n.Selectable:
			mark = "[ ]"
		}
		label := n.Label
		if n.Icon != "" {
			label = n.Icon + " " + label
		}
		var flags []string
		if !n.Online {
			flags = append(flags, "offline")
		}
		if n.Orphan {
			flags = append(flags, "orphan")
		}
		suffix := ""
		if len(flags) > 0 {
			suffix = " (" + strings.Join(flags, ", ") + ")"
		}
		fmt.Fprintf(w, "%s %s%s%s\n", mark, strings.Repeat("  ", max(n.Level, 0)), label, suffix)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
