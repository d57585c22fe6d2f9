package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"stretchreminder/logger"
	"stretchreminder/models"
	"stretchreminder/notify"
	"stretchreminder/reminder"
	"stretchreminder/storage"
	"stretchreminder/tray"
	"stretchreminder/ui"
)

// Globals are the flags shared by every command
type Globals struct {
	Config   string `help:"Path to the settings file." type:"path" placeholder:"PATH"`
	Debug    bool   `help:"Log debug output to stderr as well as the log file."`
	LogDir   string `help:"Directory for log files." type:"path" placeholder:"DIR"`
	Notifier string `help:"How reminders are delivered (${enum})." enum:"fyne,zenity,console" default:"fyne"`
	Enable   bool   `help:"Start with reminders enabled."`
}

// CLI is the command line of the reminder app
type CLI struct {
	Globals

	Tray     TrayCmd     `cmd:"" help:"Run the system tray app." default:"1"`
	Headless HeadlessCmd `cmd:"" help:"Run reminders from a console menu without a tray icon."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("stretchreminder"),
		kong.Description("Periodically reminds you to get up and stretch."),
		kong.UsageOnError(),
	)

	if err := cli.Globals.initLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err := ctx.Run(&cli.Globals)
	if err != nil {
		logger.Error("Command execution failed", "error", err)
	}
	ctx.FatalIfErrorf(err)
}

func (g *Globals) initLogger() error {
	dir := g.LogDir
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = "."
		}
		dir = filepath.Join(configDir, "stretchreminder", "logs")
	}
	return logger.Init(logger.Config{Debug: g.Debug, Dir: dir})
}

func (g *Globals) store() *storage.Manager {
	path := g.Config
	if path == "" {
		path = storage.DefaultPath()
	}
	return storage.NewManager(path)
}

// watchSettings reports external edits of the settings file to controller
func watchSettings(ctx context.Context, store *storage.Manager, controller *tray.Controller) {
	go func() {
		err := store.Watch(ctx, func(s *models.Settings) {
			controller.SettingsChanged(s)
		})
		if err != nil {
			logger.Warn("Settings watcher stopped", "error", err)
		}
	}()
}

// TrayCmd runs the system tray front end
type TrayCmd struct{}

func (c *TrayCmd) Run(g *Globals) error {
	logger.Info("Starting Stretch Reminder...")

	store := g.store()
	a := ui.NewApp()

	trayApp, err := ui.NewTrayApp(a, store)
	if err != nil {
		return err
	}

	var notifier notify.Notifier
	switch g.Notifier {
	case "zenity":
		notifier = notify.NewZenityNotifier()
	case "console":
		notifier = notify.NewConsoleNotifier(os.Stdout)
	default:
		notifier = trayApp.Notifier()
	}

	controller := tray.NewController(store, notifier, reminder.RealClock{}, trayApp)
	trayApp.Bind(controller)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchSettings(ctx, store, controller)

	if g.Enable {
		if err := controller.Enable(); err != nil {
			logger.Error("Could not enable reminders", "error", err)
		}
	}

	trayApp.Run()
	controller.Shutdown()
	return nil
}

// HeadlessCmd drives the controller from a console menu
type HeadlessCmd struct{}

func (c *HeadlessCmd) Run(g *Globals) error {
	store := g.store()

	var notifier notify.Notifier = notify.NewConsoleNotifier(os.Stdout)
	if g.Notifier == "zenity" {
		notifier = notify.Multi(notifier, notify.NewZenityNotifier())
	}

	console := NewConsoleApp(store, os.Stdin, os.Stdout)
	controller := tray.NewController(store, notifier, reminder.RealClock{}, console)
	console.Bind(controller)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	watchSettings(ctx, store, controller)

	if g.Enable {
		if err := controller.Enable(); err != nil {
			return err
		}
	}

	console.Run(ctx)
	controller.Shutdown()
	return nil
}
