package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studybook-cli/studybook/internal/format"
	"github.com/studybook-cli/studybook/internal/library"
)

type listOptions struct {
	jsonOutput bool
	kind       string
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content items in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.kind, "kind", "", "Only list items of this kind (lesson, quiz, reference)")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return newCommandError("list", "loading configuration", err, "Check the configuration file syntax and try again.")
	}

	libraryPath, err := defaultLibraryPath()
	if err != nil {
		return newCommandError("list", "determining library path", err, "Ensure your HOME directory is set correctly.")
	}

	store, err := library.NewStore(libraryPath)
	if err != nil {
		return newCommandError("list", "loading content library", err, "Check library file permissions and try again.")
	}

	items := store.List()
	if opts.kind != "" {
		filtered := items[:0]
		for _, item := range items {
			if item.Kind == opts.kind {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	app.log.WithFields(map[string]any{"command": "list", "items": len(items)}).Debug("library loaded")

	if opts.jsonOutput {
		return renderListJSON(cmd, items)
	}

	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No content items in the library yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'studybook add <file>' to add your first item.")
		return nil
	}

	return renderListTable(cmd, app, items)
}

func renderListTable(cmd *cobra.Command, app *appContext, items []library.ContentItem) error {
	out := cmd.OutOrStdout()
	cfg := app.fmtr.Config()
	unicode := cfg.UnicodeEnabled

	// Titles get a third of the terminal; the other columns are narrow
	// and near-fixed width.
	titleLimit := cfg.TerminalWidth / 3
	if titleLimit < 12 {
		titleLimit = 12
	}

	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{
			item.ID,
			format.Truncate(valueOrFallback(item.Title, "(untitled)"), titleLimit),
			item.Kind,
			importanceMarks(item.Importance, unicode),
			lessonsSummary(item.LessonsDone, item.LessonsTotal),
			formatRelativeTime(item.UpdatedAt),
		}
	}

	header := app.fmtr.Header("Library",
		format.WithLevel(2),
		format.WithSubtitle(fmt.Sprintf("%d items", len(items))))
	table := app.fmtr.Table(rows,
		format.WithHeaders("ID", "TITLE", "KIND", "IMPORTANCE", "LESSONS", "UPDATED"),
		format.WithIndex())

	fmt.Fprintln(out, header)
	fmt.Fprintln(out, table)
	return nil
}

type listJSONPayload struct {
	Version string                `json:"version"`
	Count   int                   `json:"count"`
	Items   []library.ContentItem `json:"items"`
}

func renderListJSON(cmd *cobra.Command, items []library.ContentItem) error {
	payload := listJSONPayload{
		Version: "1.0",
		Count:   len(items),
		Items:   items,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
