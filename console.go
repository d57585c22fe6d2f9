package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"stretchreminder/settingsform"
	"stretchreminder/storage"
	"stretchreminder/tray"
)

// ConsoleApp is a text menu over the reminder controller
type ConsoleApp struct {
	store      *storage.Manager
	controller *tray.Controller
	form       *settingsform.Form
	in         *bufio.Scanner
	out        io.Writer
}

// NewConsoleApp creates a console front end reading commands from in
func NewConsoleApp(store *storage.Manager, in io.Reader, out io.Writer) *ConsoleApp {
	app := &ConsoleApp{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
	}
	app.form = settingsform.New(store, app)
	return app
}

// Bind attaches the controller the menu drives
func (app *ConsoleApp) Bind(controller *tray.Controller) {
	app.controller = controller
	app.form.Running = controller.Enabled
	controller.SetSettingsOpener(app)
}

// Run shows the menu until the user exits, input ends or ctx is done
func (app *ConsoleApp) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, app.in)

	for {
		app.showMenu()
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if !app.handleChoice(ctx, strings.TrimSpace(line), lines) {
				return
			}
		}
	}
}

// Show implements tray.Indicator
func (app *ConsoleApp) Show(state tray.State) {
	glyph := "[-]"
	if state.Glyph == tray.GlyphActive {
		glyph = "[o]"
	}
	fmt.Fprintf(app.out, "%s reminders %s\n", glyph, map[bool]string{true: "enabled", false: "disabled"}[state.Enabled])
}

// OpenSettings implements tray.SettingsOpener by printing the current values.
// Edits go through the "settings" menu choice.
func (app *ConsoleApp) OpenSettings() {
	fields := app.form.Open()
	fmt.Fprintf(app.out, "Settings (%s)\n", app.store.Path())
	fmt.Fprintf(app.out, "  Reminder Interval (minutes):    %s\n", fields.Interval)
	fmt.Fprintf(app.out, "  Custom Reminder Message:        %s\n", fields.Message)
	fmt.Fprintf(app.out, "  Play Sound:                     %t\n", fields.PlaySound)
	fmt.Fprintf(app.out, "  Notification Timeout (seconds): %s\n", fields.Timeout)
}

// ShowInfo implements settingsform.Dialogs
func (app *ConsoleApp) ShowInfo(title, message string) {
	fmt.Fprintf(app.out, "%s: %s\n", title, message)
}

// ShowError implements settingsform.Dialogs
func (app *ConsoleApp) ShowError(title string, err error) {
	fmt.Fprintf(app.out, "%s: %v\n", title, err)
}

func (app *ConsoleApp) showMenu() {
	toggle := app.controller.State().ToggleLabel
	fmt.Fprintln(app.out, "\n=== Stretch Reminder ===")
	fmt.Fprintf(app.out, "1. %s\n", toggle)
	fmt.Fprintln(app.out, "2. Settings")
	fmt.Fprintln(app.out, "3. Edit Settings")
	fmt.Fprintln(app.out, "4. Status")
	fmt.Fprintln(app.out, "5. Exit")
	fmt.Fprint(app.out, "Choice: ")
}

// handleChoice runs one menu command and reports whether to keep going
func (app *ConsoleApp) handleChoice(ctx context.Context, choice string, lines <-chan string) bool {
	switch choice {
	case "1", "t", "toggle":
		if err := app.controller.Toggle(); err != nil {
			app.ShowError(settingsform.ErrorTitle, err)
		}
	case "2", "s", "settings":
		app.controller.OpenSettings()
	case "3", "e", "edit":
		app.editSettings(ctx, lines)
	case "4", "status":
		app.showStatus()
	case "5", "q", "quit", "exit":
		return false
	case "":
	default:
		fmt.Fprintf(app.out, "Unknown option: %s\n", choice)
	}
	return true
}

// editSettings prompts for each field, keeping the current value on empty input
func (app *ConsoleApp) editSettings(ctx context.Context, lines <-chan string) {
	fields := app.form.Open()

	prompt := func(label, current string) (string, bool) {
		fmt.Fprintf(app.out, "%s [%s]: ", label, current)
		select {
		case <-ctx.Done():
			return "", false
		case line, ok := <-lines:
			if !ok {
				return "", false
			}
			if line = strings.TrimSpace(line); line != "" {
				return line, true
			}
			return current, true
		}
	}

	var ok bool
	if fields.Interval, ok = prompt("Reminder Interval (minutes)", fields.Interval); !ok {
		return
	}
	if fields.Message, ok = prompt("Custom Reminder Message", fields.Message); !ok {
		return
	}
	sound, ok := prompt("Play Sound (y/n)", map[bool]string{true: "y", false: "n"}[fields.PlaySound])
	if !ok {
		return
	}
	fields.PlaySound = strings.HasPrefix(strings.ToLower(sound), "y")
	if fields.Timeout, ok = prompt("Notification Timeout (seconds)", fields.Timeout); !ok {
		return
	}

	app.form.Submit(fields)
}

func (app *ConsoleApp) showStatus() {
	status := app.controller.Status()
	if !status.Enabled {
		fmt.Fprintln(app.out, "Reminders are off.")
		return
	}
	fmt.Fprintf(app.out, "Reminders are running (run %s)\n", status.RunID)
	fmt.Fprintf(app.out, "  Every %d minutes: %q\n", status.Settings.ReminderInterval, status.Settings.CustomMessage)
	if status.PendingChanges {
		fmt.Fprintln(app.out, "  Saved settings differ; disable and enable reminders to apply them.")
	}
}

// readLines delivers scanned lines until input ends or ctx is done.
// A Scan already blocked on input returns with the next line, which is dropped.
func readLines(ctx context.Context, in *bufio.Scanner) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for in.Scan() {
			if ctx.Err() != nil {
				return
			}
			select {
			case lines <- in.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
