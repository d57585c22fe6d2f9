package settingsform

import (
	"errors"
	"strconv"

	"stretchreminder/logger"
	"stretchreminder/models"
)

// Dialog titles and messages shown after a submit
const (
	SuccessTitle   = "Success"
	SuccessMessage = "Settings saved successfully!"
	PendingNote    = "Changes apply the next time reminders are enabled."
	ErrorTitle     = "Error"
	InvalidNumbers = "Please enter valid positive numbers for interval and timeout."
	EmptyMessage   = "Please enter a reminder message."
)

// Store is the settings persistence the form reads and writes
type Store interface {
	LoadSettings() *models.Settings
	SaveSettings(settings *models.Settings) error
}

// Dialogs presents blocking feedback to the user
type Dialogs interface {
	ShowInfo(title, message string)
	ShowError(title string, err error)
}

// Fields is the raw text of the form's inputs
type Fields struct {
	Interval  string
	Message   string
	PlaySound bool
	Timeout   string
}

// Form loads settings into editable fields and validates them on save.
type Form struct {
	store   Store
	dialogs Dialogs

	// Running reports whether reminders are currently active, so the
	// confirmation can mention when changes take effect.
	Running func() bool
}

// New creates a settings form backed by store
func New(store Store, dialogs Dialogs) *Form {
	return &Form{store: store, dialogs: dialogs}
}

// Open returns the current settings as form fields
func (f *Form) Open() Fields {
	return FieldsFrom(f.store.LoadSettings())
}

// FieldsFrom renders settings as form text
func FieldsFrom(s *models.Settings) Fields {
	return Fields{
		Interval:  strconv.Itoa(s.ReminderInterval),
		Message:   s.CustomMessage,
		PlaySound: s.PlaySound,
		Timeout:   strconv.Itoa(s.NotificationTimeout),
	}
}

// Submit validates fields and saves them. Invalid input shows an error and
// writes nothing; a failed save is shown as an error as well.
func (f *Form) Submit(fields Fields) (*models.Settings, error) {
	settings, err := models.ParseSettingsInput(fields.Interval, fields.Message, fields.Timeout, fields.PlaySound)
	if err != nil {
		logger.Debug("Rejected settings input", "error", err)
		f.dialogs.ShowError(ErrorTitle, errors.New(inputErrorText(err)))
		return nil, err
	}

	if err := f.store.SaveSettings(settings); err != nil {
		logger.Error("Failed to save settings", "error", err)
		f.dialogs.ShowError(ErrorTitle, err)
		return nil, err
	}

	message := SuccessMessage
	if f.Running != nil && f.Running() {
		message += "\n" + PendingNote
	}
	f.dialogs.ShowInfo(SuccessTitle, message)
	return settings, nil
}

func inputErrorText(err error) string {
	if errors.Is(err, models.ErrEmptyMessage) {
		return EmptyMessage
	}
	return InvalidNumbers
}
