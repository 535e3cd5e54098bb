package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/studybook-cli/studybook/internal/library"
)

type removeOptions struct {
	force bool
}

func newRemoveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &removeOptions{}

	cmd := &cobra.Command{
		Use:   "remove <content-id>",
		Short: "Remove a content item from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Remove without confirmation")

	return cmd
}

func runRemove(cmd *cobra.Command, rootFlags *rootFlags, contentID string, opts *removeOptions) error {
	if strings.TrimSpace(contentID) == "" {
		return newCommandError("remove", "validating content ID", errors.New("content ID cannot be empty"), "Provide the content ID you wish to remove.")
	}

	app, err := newAppContext(rootFlags)
	if err != nil {
		return newCommandError("remove", "loading configuration", err, "Check the configuration file syntax and try again.")
	}

	libraryPath, err := defaultLibraryPath()
	if err != nil {
		return newCommandError("remove", "determining library path", err, "Ensure your HOME directory is set correctly.")
	}

	store, err := library.NewStore(libraryPath)
	if err != nil {
		return newCommandError("remove", "loading content library", err, "Check library file permissions and try again.")
	}

	item, err := store.Get(contentID)
	if err != nil {
		return newCommandError("remove", fmt.Sprintf("looking up content item %q", contentID), err, "Run 'studybook list' to view stored items.")
	}

	if !opts.force {
		confirmed, err := confirmRemoval(cmd, contentID, item.Title)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := store.Remove(contentID); err != nil {
		return newCommandError("remove", fmt.Sprintf("removing content item %q", contentID), err, "Verify the item still exists using 'studybook list'.")
	}

	if err := store.Save(); err != nil {
		return newCommandError("remove", "saving library", err, "Check disk space and file permissions, then retry.")
	}

	app.log.WithFields(map[string]any{"command": "remove", "id": contentID}).Debug("content item removed")

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed content item '%s'\n", contentID)

	return nil
}

func confirmRemoval(cmd *cobra.Command, contentID, title string) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("remove", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Remove content item '%s' (%s) from the library? [y/N]: ", contentID, valueOrFallback(title, "untitled"))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

func isTerminal(reader any) bool {
	if file, ok := reader.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
