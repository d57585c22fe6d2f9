package settingsform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stretchreminder/models"
)

type memoryStore struct {
	settings *models.Settings
	saves    int
	saveErr  error
}

func (m *memoryStore) LoadSettings() *models.Settings {
	if m.settings == nil {
		return models.DefaultSettings()
	}
	s := *m.settings
	return &s
}

func (m *memoryStore) SaveSettings(s *models.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	saved := *s
	m.settings = &saved
	return nil
}

type shownDialog struct {
	title   string
	message string
	isError bool
}

type recordingDialogs struct {
	shown []shownDialog
}

func (r *recordingDialogs) ShowInfo(title, message string) {
	r.shown = append(r.shown, shownDialog{title: title, message: message})
}

func (r *recordingDialogs) ShowError(title string, err error) {
	r.shown = append(r.shown, shownDialog{title: title, message: err.Error(), isError: true})
}

func TestOpenPrepopulatesFromStore(t *testing.T) {
	store := &memoryStore{settings: &models.Settings{ReminderInterval: 30, CustomMessage: "Walk", PlaySound: false, NotificationTimeout: 7}}
	form := New(store, &recordingDialogs{})

	assert.Equal(t, Fields{Interval: "30", Message: "Walk", PlaySound: false, Timeout: "7"}, form.Open())
}

func TestOpenUsesDefaultsWhenStoreIsEmpty(t *testing.T) {
	form := New(&memoryStore{}, &recordingDialogs{})
	assert.Equal(t, Fields{Interval: "20", Message: "Time to stretch!", PlaySound: true, Timeout: "10"}, form.Open())
}

func TestSubmitRejectsNonPositiveInterval(t *testing.T) {
	store := &memoryStore{}
	dialogs := &recordingDialogs{}
	form := New(store, dialogs)

	fields := form.Open()
	fields.Interval = "-5"

	_, err := form.Submit(fields)
	assert.ErrorIs(t, err, models.ErrInvalidInterval)
	assert.Equal(t, 0, store.saves)
	require.Len(t, dialogs.shown, 1)
	assert.Equal(t, shownDialog{title: "Error", message: InvalidNumbers, isError: true}, dialogs.shown[0])
}

func TestSubmitRejectsBadTimeoutAndMessage(t *testing.T) {
	store := &memoryStore{}
	dialogs := &recordingDialogs{}
	form := New(store, dialogs)

	_, err := form.Submit(Fields{Interval: "15", Message: "Breathe", Timeout: "abc"})
	assert.ErrorIs(t, err, models.ErrInvalidTimeout)

	_, err = form.Submit(Fields{Interval: "15", Message: "  ", Timeout: "5"})
	assert.ErrorIs(t, err, models.ErrEmptyMessage)

	assert.Equal(t, 0, store.saves)
	require.Len(t, dialogs.shown, 2)
	assert.Equal(t, InvalidNumbers, dialogs.shown[0].message)
	assert.Equal(t, EmptyMessage, dialogs.shown[1].message)
}

func TestSubmitPersistsFullRecord(t *testing.T) {
	store := &memoryStore{}
	dialogs := &recordingDialogs{}
	form := New(store, dialogs)

	fields := form.Open()
	fields.Interval = "15"
	fields.Timeout = "5"
	fields.Message = "Breathe"

	saved, err := form.Submit(fields)
	require.NoError(t, err)

	want := &models.Settings{ReminderInterval: 15, CustomMessage: "Breathe", PlaySound: true, NotificationTimeout: 5}
	assert.Equal(t, want, saved)
	assert.Equal(t, want, store.settings)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, []shownDialog{{title: "Success", message: SuccessMessage}}, dialogs.shown)
}

func TestSubmitMentionsPendingChangesWhileRunning(t *testing.T) {
	dialogs := &recordingDialogs{}
	form := New(&memoryStore{}, dialogs)
	form.Running = func() bool { return true }

	_, err := form.Submit(Fields{Interval: "10", Message: "Stretch", Timeout: "3"})
	require.NoError(t, err)
	require.Len(t, dialogs.shown, 1)
	assert.Contains(t, dialogs.shown[0].message, PendingNote)
}

func TestSubmitSurfacesSaveError(t *testing.T) {
	diskFull := errors.New("no space left on device")
	store := &memoryStore{saveErr: diskFull}
	dialogs := &recordingDialogs{}
	form := New(store, dialogs)

	_, err := form.Submit(Fields{Interval: "10", Message: "Stretch", Timeout: "3"})
	assert.ErrorIs(t, err, diskFull)
	require.Len(t, dialogs.shown, 1)
	assert.True(t, dialogs.shown[0].isError)
	assert.Equal(t, diskFull.Error(), dialogs.shown[0].message)
}
