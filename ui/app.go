package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"stretchreminder/icon"
	"stretchreminder/logger"
	"stretchreminder/notify"
	"stretchreminder/storage"
	"stretchreminder/tray"
)

// AppID identifies the application to the notification system
const AppID = "io.github.stretchreminder"

// TrayApp is the system-tray front end of the reminder controller
type TrayApp struct {
	app        fyne.App
	desk       desktop.App
	controller *tray.Controller
	settings   *SettingsWindow

	menu       *fyne.Menu
	toggleItem *fyne.MenuItem

	activeIcon   fyne.Resource
	inactiveIcon fyne.Resource
}

// NewApp creates the Fyne application used by the tray and settings window
func NewApp() fyne.App {
	a := app.NewWithID(AppID)
	a.SetIcon(theme.ComputerIcon())
	return a
}

// NewTrayApp builds the tray menu for controller. The returned value is also
// the controller's Indicator.
func NewTrayApp(a fyne.App, store *storage.Manager) (*TrayApp, error) {
	desk, ok := a.(desktop.App)
	if !ok {
		return nil, ErrNoSystemTray
	}

	activeIcon, err := iconResource(true)
	if err != nil {
		return nil, err
	}
	inactiveIcon, err := iconResource(false)
	if err != nil {
		return nil, err
	}

	ta := &TrayApp{
		app:          a,
		desk:         desk,
		activeIcon:   activeIcon,
		inactiveIcon: inactiveIcon,
	}
	ta.settings = NewSettingsWindow(a, store)
	return ta, nil
}

// Bind attaches the controller and installs the tray menu.
// Each menu entry calls a named controller method.
func (ta *TrayApp) Bind(controller *tray.Controller) {
	ta.controller = controller
	controller.SetSettingsOpener(ta.settings)
	ta.settings.SetRunning(controller.Enabled)

	ta.toggleItem = fyne.NewMenuItem(tray.LabelEnable, ta.toggle)
	settingsItem := fyne.NewMenuItem("Settings", controller.OpenSettings)
	exitItem := fyne.NewMenuItem("Exit", ta.exit)
	exitItem.IsQuit = true

	ta.menu = fyne.NewMenu("Stretch Reminder", ta.toggleItem, settingsItem, exitItem)
	ta.desk.SetSystemTrayMenu(ta.menu)
	controller.Refresh()
}

// Notifier returns a notifier that delivers through the Fyne app
func (ta *TrayApp) Notifier() notify.Notifier {
	return NewFyneNotifier(ta.app)
}

// Run blocks on the Fyne event loop until Exit is chosen
func (ta *TrayApp) Run() {
	ta.app.Run()
}

// Show implements tray.Indicator
func (ta *TrayApp) Show(state tray.State) {
	if state.Glyph == tray.GlyphActive {
		ta.desk.SetSystemTrayIcon(ta.activeIcon)
	} else {
		ta.desk.SetSystemTrayIcon(ta.inactiveIcon)
	}

	if ta.toggleItem != nil {
		ta.toggleItem.Label = state.ToggleLabel
		ta.menu.Refresh()
	}
	ta.settings.SetStatus(state.Enabled)
}

func (ta *TrayApp) toggle() {
	if err := ta.controller.Toggle(); err != nil {
		logger.Error("Could not toggle reminders", "error", err)
		// Reload the fields so the offending values are on screen.
		ta.settings.OpenSettings()
		ta.settings.ShowError(errorTitle, err)
	}
}

func (ta *TrayApp) exit() {
	ta.controller.Shutdown()
	ta.app.Quit()
}

func iconResource(active bool) (fyne.Resource, error) {
	data, err := icon.PNG(active)
	if err != nil {
		return nil, err
	}
	name := "inactive.png"
	if active {
		name = "active.png"
	}
	return fyne.NewStaticResource(name, data), nil
}
