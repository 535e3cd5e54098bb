package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowCommandRendersDetailBox(t *testing.T) {
	home := setupTestHome(t)
	seedLibrary(t, home, sampleItems())

	stdout, err := executeCommand("show", "intro-to-go", "--ascii")
	require.NoError(t, err)

	require.Contains(t, stdout, "Intro to Go")
	require.Contains(t, stdout, "ID:")
	require.Contains(t, stdout, "intro-to-go")
	require.Contains(t, stdout, "Kind:")
	require.Contains(t, stdout, "lesson")
	require.Contains(t, stdout, "go, basics")
	require.Contains(t, stdout, "Syntax, tooling, and the standard library.")
	// ASCII box borders.
	require.Contains(t, stdout, "+-")
	require.Contains(t, stdout, "|")
}

func TestShowCommandRendersProgressBar(t *testing.T) {
	home := setupTestHome(t)
	seedLibrary(t, home, sampleItems())

	stdout, err := executeCommand("show", "intro-to-go", "--ascii")
	require.NoError(t, err)
	require.Contains(t, stdout, "Lessons [")
	require.Contains(t, stdout, "20.0%")
}

func TestShowCommandRendersStudyTimeAndNotes(t *testing.T) {
	home := setupTestHome(t)
	seedLibrary(t, home, sampleItems())

	stdout, err := executeCommand("show", "intro-to-go", "--ascii")
	require.NoError(t, err)

	require.Contains(t, stdout, "Studied:")
	require.Contains(t, stdout, "2h15m")
	require.Contains(t, stdout, "Notes")
	require.Contains(t, stdout, "***.. Pointer receivers")
}

func TestShowCommandRendersQuizScore(t *testing.T) {
	home := setupTestHome(t)
	seedLibrary(t, home, sampleItems())

	stdout, err := executeCommand("show", "pointers-quiz", "--ascii")
	require.NoError(t, err)
	require.Contains(t, stdout, "Score:")
	require.Contains(t, stdout, "85.0%")

	// Lessons carry no score line.
	stdout, err = executeCommand("show", "intro-to-go", "--ascii")
	require.NoError(t, err)
	require.NotContains(t, stdout, "Score:")
}

func TestShowCommandOmitsProgressWithoutLessons(t *testing.T) {
	home := setupTestHome(t)
	seedLibrary(t, home, sampleItems())

	stdout, err := executeCommand("show", "pointers-quiz", "--ascii")
	require.NoError(t, err)
	require.NotContains(t, stdout, "Lessons [")
}

func TestShowCommandJSONOutput(t *testing.T) {
	home := setupTestHome(t)
	seedLibrary(t, home, sampleItems())

	stdout, err := executeCommand("show", "intro-to-go", "--json")
	require.NoError(t, err)

	var item struct {
		ID           string `json:"id"`
		LessonsTotal int    `json:"lessons_total"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &item))
	require.Equal(t, "intro-to-go", item.ID)
	require.Equal(t, 10, item.LessonsTotal)
}

func TestShowCommandUnknownID(t *testing.T) {
	setupTestHome(t)

	_, err := executeCommand("show", "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing")
	require.Contains(t, err.Error(), "studybook list")
}
