// Package main runs a headless canvaskit session: it loads a project
// from the local store, applies configuration with hot reload, and
// autosaves the canvas as edits arrive over the engine's hooks.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/zoobzio/hookz"

	"canvaskit/internal/component"
	"canvaskit/internal/config"
	"canvaskit/internal/engine"
	"canvaskit/internal/geometry"
	"canvaskit/internal/store"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	ConfigPath string
	DBPath     string
	ProjectID  string
	Name       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		return 1
	}

	db, err := store.Open(opts.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open store: %v\n", err)
		return 1
	}
	defer db.Close()

	eng := engine.New(cfg)
	defer eng.Close()

	ctx := context.Background()

	if opts.ProjectID != "" {
		project, err := db.LoadProject(ctx, opts.ProjectID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			fmt.Fprintf(os.Stderr, "project %q not found, starting empty\n", opts.ProjectID)
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error: load project: %v\n", err)
			return 1
		default:
			eng.ImportProject(project)
			reportValidation(eng)
		}
	}

	// Apply config changes written while the session runs.
	if opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(opts.ConfigPath, 0, func(cfg *config.Config, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "config reload: %v\n", err)
				return
			}
			eng.SetCanvasDimensions(geometry.Size{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height})
			eng.SetMaxHistorySize(cfg.History.MaxEntries)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: watch config: %v\n", err)
			return 1
		}
		defer watcher.Close()
	}

	saver := newAutosaver(eng, db, opts, cfg.Autosave)
	if err := saver.start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: autosave: %v\n", err)
		return 1
	}
	defer saver.stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	// Final save so nothing recorded since the last debounce is lost.
	if err := saver.flush(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: final save: %v\n", err)
		return 1
	}
	return 0
}

// reportValidation prints per-component findings for a loaded project.
func reportValidation(eng *engine.Engine) {
	for _, comp := range eng.Components() {
		report := component.Validate(comp)
		for _, issue := range report.Errors {
			fmt.Fprintf(os.Stderr, "%s (%s): error: %s: %s\n", comp.ID, comp.Kind, issue.Field, issue.Message)
		}
		for _, issue := range report.Warnings {
			fmt.Fprintf(os.Stderr, "%s (%s): warning: %s: %s\n", comp.ID, comp.Kind, issue.Field, issue.Message)
		}
	}
}

// autosaver debounces change notifications into store writes.
type autosaver struct {
	eng  *engine.Engine
	db   *store.Store
	opts options
	cfg  config.AutosaveConfig

	mu    sync.Mutex
	timer *time.Timer
}

func newAutosaver(eng *engine.Engine, db *store.Store, opts options, cfg config.AutosaveConfig) *autosaver {
	return &autosaver{eng: eng, db: db, opts: opts, cfg: cfg}
}

func (a *autosaver) start() error {
	if !a.cfg.Enabled {
		return nil
	}
	for _, key := range []hookz.Key{
		engine.EventHistoryRecorded,
		engine.EventCanvasChanged,
	} {
		if _, err := a.eng.Events().Hook(key, a.onChange); err != nil {
			return err
		}
	}
	return nil
}

func (a *autosaver) onChange(ctx context.Context, _ engine.ChangeEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	debounce := time.Duration(a.cfg.DebounceMS) * time.Millisecond
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(debounce, func() {
		if err := a.flush(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "autosave: %v\n", err)
		}
	})
	return nil
}

func (a *autosaver) flush(ctx context.Context) error {
	return a.db.SaveProject(ctx, a.eng.Project(a.opts.ProjectID, a.opts.Name))
}

func (a *autosaver) stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.DBPath, "db", defaultDBPath(), "Path to the project database")
	flag.StringVar(&opts.ProjectID, "project", "", "Project id to load")
	flag.StringVar(&opts.ProjectID, "p", "", "Project id to load (shorthand)")
	flag.StringVar(&opts.Name, "name", "untitled", "Project name used when saving")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Canvaskit - canvas editor state engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: canvaskit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  canvaskit -p landing-page        Open a stored project\n")
		fmt.Fprintf(os.Stderr, "  canvaskit -c canvaskit.toml      Run with a config file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Canvaskit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.ProjectID == "" {
		opts.ProjectID = "default"
	}

	return opts
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "canvaskit.db"
	}
	return filepath.Join(home, ".canvaskit", "canvaskit.db")
}
