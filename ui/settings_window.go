package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"stretchreminder/settingsform"
	"stretchreminder/storage"
)

const errorTitle = settingsform.ErrorTitle

// SettingsWindow is the settings form shown from the tray menu.
// It is created once and hidden instead of closed.
type SettingsWindow struct {
	window fyne.Window
	form   *settingsform.Form
	status *StatusLabel

	intervalEntry *widget.Entry
	messageEntry  *widget.Entry
	soundCheck    *widget.Check
	timeoutEntry  *widget.Entry
}

// NewSettingsWindow builds the settings window backed by store
func NewSettingsWindow(a fyne.App, store *storage.Manager) *SettingsWindow {
	sw := &SettingsWindow{
		window:        a.NewWindow("Settings"),
		status:        NewStatusLabel(),
		intervalEntry: widget.NewEntry(),
		messageEntry:  widget.NewEntry(),
		soundCheck:    widget.NewCheck("Play Sound", nil),
		timeoutEntry:  widget.NewEntry(),
	}
	sw.form = settingsform.New(store, sw)

	sw.intervalEntry.SetPlaceHolder("Minutes between reminders")
	sw.messageEntry.SetPlaceHolder("Shown in every reminder")
	sw.timeoutEntry.SetPlaceHolder("Seconds the reminder stays visible")

	form := widget.NewForm(
		widget.NewFormItem("Reminder Interval (minutes)", sw.intervalEntry),
		widget.NewFormItem("Custom Reminder Message", sw.messageEntry),
		widget.NewFormItem("", sw.soundCheck),
		widget.NewFormItem("Notification Timeout (seconds)", sw.timeoutEntry),
	)
	form.SubmitText = "Save Settings"
	form.OnSubmit = sw.save
	form.CancelText = "Close"
	form.OnCancel = sw.window.Hide

	sw.window.SetContent(container.NewVBox(sw.status, form))
	sw.window.Resize(fyne.NewSize(400, 250))
	sw.window.SetCloseIntercept(sw.window.Hide)
	return sw
}

// SetRunning lets the form tell the user when saved changes take effect
func (sw *SettingsWindow) SetRunning(running func() bool) {
	sw.form.Running = running
}

// SetStatus updates the running banner
func (sw *SettingsWindow) SetStatus(active bool) {
	sw.status.SetActive(active)
}

// OpenSettings implements tray.SettingsOpener. It reloads the stored
// settings into the fields and shows the window without blocking.
func (sw *SettingsWindow) OpenSettings() {
	fields := sw.form.Open()
	sw.intervalEntry.SetText(fields.Interval)
	sw.messageEntry.SetText(fields.Message)
	sw.soundCheck.SetChecked(fields.PlaySound)
	sw.timeoutEntry.SetText(fields.Timeout)

	sw.window.Show()
	sw.window.RequestFocus()
}

// ShowInfo implements settingsform.Dialogs
func (sw *SettingsWindow) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, sw.window)
}

// ShowError implements settingsform.Dialogs. The window is shown first so
// errors raised from the tray menu have a parent.
func (sw *SettingsWindow) ShowError(title string, err error) {
	sw.window.Show()
	dialog.ShowError(err, sw.window)
}

func (sw *SettingsWindow) save() {
	sw.form.Submit(settingsform.Fields{
		Interval:  sw.intervalEntry.Text,
		Message:   sw.messageEntry.Text,
		PlaySound: sw.soundCheck.Checked,
		Timeout:   sw.timeoutEntry.Text,
	})
}
