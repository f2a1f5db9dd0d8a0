// Package main provides the CLI entry point for breakstudio.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/breakstudio/pkg/adapters/capturehtml"
	"github.com/user/breakstudio/pkg/adapters/ggrenderer"
	"github.com/user/breakstudio/pkg/adapters/logger"
	"github.com/user/breakstudio/pkg/adapters/memstore"
	"github.com/user/breakstudio/pkg/adapters/osfilesystem"
	"github.com/user/breakstudio/pkg/adapters/sqlitestore"
	"github.com/user/breakstudio/pkg/config"
	"github.com/user/breakstudio/pkg/design"
	"github.com/user/breakstudio/pkg/designer"
	"github.com/user/breakstudio/pkg/events"
	"github.com/user/breakstudio/pkg/geometry"
	"github.com/user/breakstudio/pkg/export"
	"github.com/user/breakstudio/pkg/ports"
	"github.com/user/breakstudio/pkg/server"
	"github.com/user/breakstudio/pkg/summarizer"
	"github.com/user/breakstudio/pkg/tui"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "breakstudio",
		Usage:   l10n.T("Design break-screen backgrounds for live streams"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("Path to a YAML configuration file"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
			&cli.StringFlag{
				Name:  "storage",
				Usage: l10n.T("Storage driver (sqlite or memory), overrides config"),
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: l10n.T("SQLite database path, overrides config"),
			},
		},
		Commands: []*cli.Command{
			editCommand(),
			exportCommand(),
			serveCommand(),
			listCommand(),
			inspectCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ==== Commands ====

func editCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     l10n.T("Edit a design in the terminal"),
		ArgsUsage: "[design-id]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Value:   "Untitled",
				Usage:   l10n.T("Name for a newly created design"),
			},
		},
		Action: runEdit,
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     l10n.T("Export a stored design as a PNG image"),
		ArgsUsage: "<design-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Required: true,
				Usage:    l10n.T("Output PNG file path (required)"),
			},
			&cli.Float64Flag{
				Name:  "scale",
				Usage: l10n.T("Scale factor applied to the canvas, overrides config"),
			},
			&cli.StringFlag{
				Name:  "font",
				Usage: l10n.T("TrueType font file for text widgets, overrides config"),
			},
		},
		Action: runExport,
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: l10n.T("Run the design persistence HTTP service"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "listen",
				Usage: l10n.T("Listen address, overrides config (e.g. :8723)"),
			},
		},
		Action: runServe,
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  l10n.T("List stored designs"),
		Action: runList,
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     l10n.T("Print a Markdown summary of a stored design"),
		ArgsUsage: "<design-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   l10n.T("Write the summary to a file instead of stdout"),
			},
		},
		Action: runInspect,
	}
}

// ==== Command actions ====

func runEdit(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var doc design.Design
	if id := c.Args().First(); id != "" {
		doc, err = store.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("load design %s: %w", id, err)
		}
	} else {
		doc = design.New(uuid.NewString(), c.String("name"))
		doc.Width = cfg.CanvasWidth
		doc.Height = cfg.CanvasHeight
		doc.Background = cfg.Background
		if err := store.Put(ctx, doc); err != nil {
			return fmt.Errorf("create design: %w", err)
		}
	}

	// Console logging would corrupt the alternate screen, so the
	// editor always runs with the noop logger.
	log := logger.NewNoop()

	d := designer.New(events.NewBus(), log)
	d.LoadDesign(doc)

	canvas := geometry.Rect{Width: doc.Width, Height: doc.Height}
	toolbox := designer.NewToolboxManager(osfilesystem.New(), log, cfg.ToolboxStatePath, canvas)

	p := tea.NewProgram(
		tui.New(d, store, doc, toolbox, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}

func runExport(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(c)

	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("export: %s", l10n.T("a design id is required"))
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	timeout := time.Duration(cfg.Export.TimeoutMs) * time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	doc, err := store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load design %s: %w", id, err)
	}

	opts := export.Options{
		Scale:    cfg.Export.Scale,
		FontPath: cfg.Export.FontPath,
	}
	if c.IsSet("scale") {
		opts.Scale = c.Float64("scale")
	}
	if c.IsSet("font") {
		opts.FontPath = c.String("font")
	}

	exporter := export.New(ggrenderer.New(), newCapturer(cfg), export.NewHTTPLoader(timeout), log)

	log.Info(l10n.F("Exporting %s (%dx%d)...", doc.Name, int(doc.Width), int(doc.Height)))

	png, err := exporter.Export(ctx, doc, opts)
	if err != nil {
		return fmt.Errorf("export design %s: %w", id, err)
	}

	output := c.String("output")
	if err := osfilesystem.New().WriteFile(output, png); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	log.Info(l10n.F("Output saved to %s", output))
	return nil
}

func runServe(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(c)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	timeout := time.Duration(cfg.Export.TimeoutMs) * time.Millisecond
	exporter := export.New(ggrenderer.New(), newCapturer(cfg), export.NewHTTPLoader(timeout), log)

	srv := server.New(store, exporter, log)

	addr := cfg.Server.Listen
	if c.IsSet("listen") {
		addr = c.String("listen")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	log.Info(l10n.F("Listening on %s", addr))

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		log.Warn(l10n.T("Interrupted, shutting down..."))
		return srv.Shutdown()
	}
}

func runList(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	summaries, err := store.List(context.Background())
	if err != nil {
		return fmt.Errorf("list designs: %w", err)
	}

	if len(summaries) == 0 {
		fmt.Println(l10n.T("No designs stored."))
		return nil
	}
	for _, s := range summaries {
		fmt.Printf("%s  %-24s  %s\n", s.ID, s.Name, l10n.F("%d widgets", s.Widgets))
	}
	return nil
}

func runInspect(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("inspect: %s", l10n.T("a design id is required"))
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	doc, err := store.Get(context.Background(), id)
	if err != nil {
		return fmt.Errorf("load design %s: %w", id, err)
	}

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	summary := summarizer.FromDesign(doc)

	if output := c.String("output"); output != "" {
		return summarizer.NewWriter(formatter, osfilesystem.New()).Write(output, summary)
	}

	fmt.Print(formatter.Format(summary))
	return nil
}

// ==== Wiring helpers ====

// loadConfig reads the config file named by --config, or returns
// defaults, then applies CLI overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()

	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}

	if c.IsSet("storage") {
		cfg.Storage.Driver = c.String("storage")
	}
	if c.IsSet("db") {
		cfg.Storage.Path = c.String("db")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	return cfg, nil
}

func newLogger(c *cli.Context) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
}

func newCapturer(cfg config.Config) *capturehtml.Capturer {
	return capturehtml.NewWithOptions(capturehtml.Options{
		Headless:   cfg.Export.Headless,
		ChromePath: cfg.Export.ChromePath,
	})
}

func openStore(cfg config.Config) (ports.DesignStore, error) {
	switch cfg.Storage.Driver {
	case "memory":
		return memstore.New(), nil
	case "sqlite", "":
		store, err := sqlitestore.Open(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("open store %s: %w", cfg.Storage.Path, err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
