package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studybook-cli/studybook/internal/format"
	"github.com/studybook-cli/studybook/internal/library"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <content-id>",
		Short: "Show detailed information about a content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output item details as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, contentID string, opts *showOptions) error {
	if strings.TrimSpace(contentID) == "" {
		return newCommandError("show", "validating content ID", errors.New("content ID cannot be empty"), "Provide the content ID you wish to inspect.")
	}

	app, err := newAppContext(rootFlags)
	if err != nil {
		return newCommandError("show", "loading configuration", err, "Check the configuration file syntax and try again.")
	}

	libraryPath, err := defaultLibraryPath()
	if err != nil {
		return newCommandError("show", "determining library path", err, "Ensure your HOME directory is set correctly.")
	}

	store, err := library.NewStore(libraryPath)
	if err != nil {
		return newCommandError("show", "loading content library", err, "Check library file permissions and try again.")
	}

	item, err := store.Get(contentID)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("looking up content item %q", contentID), err, "Run 'studybook list' to view stored items.")
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(item)
	}

	return renderShowDetail(cmd, app, item)
}

func renderShowDetail(cmd *cobra.Command, app *appContext, item library.ContentItem) error {
	out := cmd.OutOrStdout()
	unicode := app.fmtr.Config().UnicodeEnabled
	progress := item.Progress()

	pairs := []format.KeyValue{
		{Key: "ID", Value: item.ID},
		{Key: "Kind", Value: item.Kind},
		{Key: "Importance", Value: importanceMarks(item.Importance, unicode)},
		{Key: "Tags", Value: valueOrFallback(strings.Join(item.Tags, ", "), "(none)")},
	}
	if item.Kind == library.KindQuiz && item.QuizScore > 0 {
		pairs = append(pairs, format.KeyValue{Key: "Score", Value: fmt.Sprintf("%.1f%%", progress.QuizScore)})
	}
	if progress.StudyTime > 0 {
		pairs = append(pairs, format.KeyValue{Key: "Studied", Value: progress.FormatStudyTime()})
	}
	pairs = append(pairs, format.KeyValue{Key: "Updated", Value: formatRelativeTime(item.UpdatedAt)})

	body := app.fmtr.KeyValues(pairs)
	if desc := strings.TrimSpace(item.Description); desc != "" {
		body += "\n\n" + desc
	}

	box := app.fmtr.Box(body, format.WithTitle(valueOrFallback(item.Title, item.ID)))
	fmt.Fprintln(out, box)

	if len(item.Notes) > 0 {
		lines := make([]string, len(item.Notes))
		for i, note := range item.Notes {
			lines[i] = importanceMarks(note.Importance, unicode) + " " + note.Title
		}
		fmt.Fprintln(out, app.fmtr.Header("Notes", format.WithLevel(3)))
		fmt.Fprintln(out, app.fmtr.List(lines))
	}

	if progress.TotalLessons > 0 {
		bar := app.fmtr.ProgressBar(progress.LessonsCompleted, progress.TotalLessons, format.WithLabel("Lessons"))
		fmt.Fprintln(out, bar)
	}

	return nil
}
