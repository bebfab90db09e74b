package commands

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/sqlcaps/sqlcaps/internal/document"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <files...>",
		Short: "Re-capitalize files as they change on disk",
		Long: `Watch files and rewrite their keywords in place whenever they change.
Rewrites performed by the watcher itself are detected and skipped, so a
capitalization pass never re-triggers itself.`,
		Example: `  sqlcaps watch queries/report.sql queries/load.sql`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runWatch,
	}
}

func runWatch(cmd *cobra.Command, files []string) error {
	cmdCtx := NewCommandContext(cmd)
	logger := cmdCtx.Logger

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// The store tracks the last content this process wrote per file, so a
	// write event caused by our own rewrite is recognized and ignored.
	store := document.NewStore()

	for _, path := range files {
		if err := processWatched(cmdCtx, store, path); err != nil {
			return err
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
	logger.Info("watching", "files", len(files))

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := processWatched(cmdCtx, store, event.Name); err != nil {
				logger.Error("capitalize failed", "file", event.Name, "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "err", err)
		}
	}
}

func processWatched(cmdCtx *CommandContext, store *document.Store, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if prev := store.Get(path); prev != nil && prev.Content() == string(content) {
		// Our own rewrite landing back as a write event.
		return nil
	}

	doc, eng := newEngine(cmdCtx.Cfg, path, string(content))
	stats, err := eng.CapitalizeBuffer()
	if err != nil {
		return err
	}
	if doc.Content() != string(content) {
		if err := os.WriteFile(path, []byte(doc.Content()), 0644); err != nil {
			return err
		}
	}
	store.Open(doc)
	cmdCtx.Logger.Info("capitalized", "file", path, "rewritten", stats.Rewritten)
	return nil
}
