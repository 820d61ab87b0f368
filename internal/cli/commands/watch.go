package commands

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/sqlseg/internal/cli/output"
	"github.com/leapstack-labs/sqlseg/internal/session"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// defaultDebounce coalesces bursts of writes from editors.
const defaultDebounce = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <paths...>",
		Short: "Re-split SQL files whenever they change",
		Long: `Watch SQL files and directories and re-split each .sql file when it changes.

Every file gets its own segmenter session. Directories are watched
recursively. Stop with Ctrl+C.`,
		Example: `  sqlseg watch models/
  sqlseg watch --dialect postgres schema.sql`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, args, debounce)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "Delay before re-splitting a changed file")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, paths []string, debounce time.Duration) error {
	cmdCtx := NewCommandContext(cmd)

	opts, err := cmdCtx.SegmenterOptions(cmdCtx.Dialect())
	if err != nil {
		return err
	}

	w := newWatcher(cmdCtx.Renderer, cmdCtx.Logger, session.NewStore(opts...), debounce)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, p := range paths {
		if err := w.add(watcher, p); err != nil {
			return err
		}
	}

	r := cmdCtx.Renderer
	r.Muted(fmt.Sprintf("watching %s (%s open)", strings.Join(paths, ", "), plural(w.store.Len(), "file")))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.run(gctx, watcher)
	})
	return g.Wait()
}

// sqlWatcher re-splits files on change, one session per file.
type sqlWatcher struct {
	r      *output.Renderer
	logger *slog.Logger
	store  *session.Store
	delay  time.Duration

	// files were named explicitly; dirs are watched recursively.
	files map[string]bool
	dirs  map[string]bool

	mu     sync.Mutex // guards timers and rendering
	timers map[string]*time.Timer
}

func newWatcher(r *output.Renderer, logger *slog.Logger, store *session.Store, delay time.Duration) *sqlWatcher {
	return &sqlWatcher{
		r:      r,
		logger: logger,
		store:  store,
		delay:  delay,
		files:  make(map[string]bool),
		dirs:   make(map[string]bool),
		timers: make(map[string]*time.Timer),
	}
}

// add watches path. Directories are walked and every .sql file is loaded.
func (w *sqlWatcher) add(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}
	if !info.IsDir() {
		path = filepath.Clean(path)
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return fmt.Errorf("cannot watch %s: %w", path, err)
		}
		w.files[path] = true
		return w.load(path)
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			w.dirs[filepath.Clean(p)] = true
			return watcher.Add(p)
		}
		if isSQLFile(p) {
			return w.load(p)
		}
		return nil
	})
}

// watched reports whether an event path belongs to a watched file or directory.
func (w *sqlWatcher) watched(path string) bool {
	path = filepath.Clean(path)
	return w.files[path] || (w.dirs[filepath.Dir(path)] && isSQLFile(path))
}

func isSQLFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".sql")
}

// load reads path into its session and reports the result.
func (w *sqlWatcher) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	sess := w.store.Open(path, string(data))
	segs := sess.Segments()
	w.logger.Debug("file split", "file", path, "session", sess.ID, "statements", len(segs), "version", sess.Version())

	w.mu.Lock()
	defer w.mu.Unlock()
	w.r.Printf("%s: %s\n", path, plural(len(segs), "statement"))
	return nil
}

// forget closes the session of a removed file.
func (w *sqlWatcher) forget(path string) {
	sess, ok := w.store.Find(path)
	if !ok {
		return
	}
	w.store.Close(sess.ID)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.r.Printf("%s: removed\n", path)
}

// handle schedules work for one filesystem event.
func (w *sqlWatcher) handle(event fsnotify.Event) {
	if !w.watched(event.Name) {
		return
	}

	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		w.cancel(event.Name)
		w.forget(event.Name)
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	// Debounce per file
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[event.Name]; ok {
		t.Stop()
	}
	w.timers[event.Name] = time.AfterFunc(w.delay, func() {
		w.mu.Lock()
		delete(w.timers, event.Name)
		w.mu.Unlock()

		if err := w.load(event.Name); err != nil {
			w.logger.Error("re-split failed", "file", event.Name, "error", err)
		}
	})
}

func (w *sqlWatcher) cancel(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Stop()
		delete(w.timers, path)
	}
}

// run processes watcher events until ctx is cancelled.
func (w *sqlWatcher) run(ctx context.Context, watcher *fsnotify.Watcher) error {
	defer w.stopAll()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if w.isNewSubdir(event) {
				if err := w.add(watcher, event.Name); err != nil {
					w.logger.Error("failed to watch new directory", "dir", event.Name, "error", err)
				}
				continue
			}
			w.handle(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// isNewSubdir reports whether event created a directory inside a watched tree.
func (w *sqlWatcher) isNewSubdir(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) || !w.dirs[filepath.Dir(filepath.Clean(event.Name))] {
		return false
	}
	info, err := os.Stat(event.Name)
	return err == nil && info.IsDir()
}

func (w *sqlWatcher) stopAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}
