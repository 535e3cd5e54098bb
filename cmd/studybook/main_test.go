package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/studybook-cli/studybook/internal/library"
	"github.com/studybook-cli/studybook/internal/model"
)

// setupTestHome points HOME at a fresh temp directory so commands read
// and write an isolated library, and pins the environment the platform
// detector inspects.
func setupTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NO_COLOR", "1")
	t.Setenv("COLUMNS", "80")
	return home
}

func seedLibrary(t *testing.T, home string, items []library.ContentItem) {
	t.Helper()
	path := filepath.Join(home, ".studybook", "library.json")
	store, err := library.NewStore(path)
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, store.Add(item))
	}
	require.NoError(t, store.Save())
}

func executeCommand(args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func sampleItems() []library.ContentItem {
	now := time.Now().UTC()
	return []library.ContentItem{
		{
			ID:           "intro-to-go",
			Title:        "Intro to Go",
			Kind:         library.KindLesson,
			Description:  "Syntax, tooling, and the standard library.",
			Tags:         []string{"go", "basics"},
			Importance:   4,
			LessonsDone:  2,
			LessonsTotal: 10,
			StudyTime:    2*time.Hour + 15*time.Minute,
			Notes: []model.Note{
				{ID: "n1", Title: "Pointer receivers", Importance: 3, CreatedAt: now},
			},
			CreatedAt: now.Add(-48 * time.Hour),
			UpdatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:         "pointers-quiz",
			Title:      "Pointers Quiz",
			Kind:       library.KindQuiz,
			Importance: 2,
			QuizScore:  85,
			CreatedAt:  now.Add(-24 * time.Hour),
			UpdatedAt:  now.Add(-30 * time.Minute),
		},
	}
}
