package ui

import (
	"errors"

	"fyne.io/fyne/v2"

	"stretchreminder/logger"
	"stretchreminder/notify"
)

// ErrNoSystemTray is returned when the driver cannot show a tray icon
var ErrNoSystemTray = errors.New("system tray is not supported by this driver")

// FyneNotifier delivers reminders through the Fyne app
type FyneNotifier struct {
	app fyne.App
}

// NewFyneNotifier creates a notifier for a
func NewFyneNotifier(a fyne.App) *FyneNotifier {
	return &FyneNotifier{app: a}
}

// Notify sends n. Fyne leaves display time and sound to the platform, so
// Timeout and Sound are only logged.
func (f *FyneNotifier) Notify(n notify.Notification) error {
	logger.Debug("Sending notification", "message", n.Message, "timeout", n.Timeout, "sound", n.Sound)
	f.app.SendNotification(fyne.NewNotification(n.Title, n.Message))
	return nil
}
