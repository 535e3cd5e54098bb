package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studybook-cli/studybook/internal/library"
)

func TestRemoveCommandWithForce(t *testing.T) {
	home := setupTestHome(t)
	seedLibrary(t, home, sampleItems())

	stdout, err := executeCommand("remove", "intro-to-go", "--force")
	require.NoError(t, err)
	require.Contains(t, stdout, "Removed content item 'intro-to-go'")

	store, err := library.NewStore(filepath.Join(home, ".studybook", "library.json"))
	require.NoError(t, err)
	_, err = store.Get("intro-to-go")
	require.Error(t, err)
	require.Equal(t, 1, store.Count())
}

func TestRemoveCommandUnknownID(t *testing.T) {
	setupTestHome(t)

	_, err := executeCommand("remove", "missing", "--force")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing")
}

func TestRemoveCommandNonInteractiveWithoutForce(t *testing.T) {
	home := setupTestHome(t)
	seedLibrary(t, home, sampleItems())

	_, err := executeCommand("remove", "intro-to-go")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--force")
}

func TestRemoveCommandConfirmationDeclined(t *testing.T) {
	home := setupTestHome(t)
	seedLibrary(t, home, sampleItems())

	restore := termIsTerminal
	termIsTerminal = func(fd int) bool { return true }
	t.Cleanup(func() { termIsTerminal = restore })

	reader, writer, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { reader.Close() })

	_, err = writer.WriteString("n\n")
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	buf := &strings.Builder{}
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(reader)
	cmd.SetArgs([]string{"remove", "intro-to-go"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, buf.String(), "Cancelled.")

	store, err := library.NewStore(filepath.Join(home, ".studybook", "library.json"))
	require.NoError(t, err)
	require.Equal(t, 2, store.Count())
}

func TestRemoveCommandConfirmationAccepted(t *testing.T) {
	home := setupTestHome(t)
	seedLibrary(t, home, sampleItems())

	restore := termIsTerminal
	termIsTerminal = func(fd int) bool { return true }
	t.Cleanup(func() { termIsTerminal = restore })

	reader, writer, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { reader.Close() })

	_, err = writer.WriteString("y\n")
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	buf := &strings.Builder{}
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(reader)
	cmd.SetArgs([]string{"remove", "intro-to-go"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, buf.String(), "Removed content item 'intro-to-go'")
}
