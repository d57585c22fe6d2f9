package ui

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stretchreminder/models"
	"stretchreminder/notify"
	"stretchreminder/storage"
)

func TestSettingsWindowSavesEditedFields(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	store := storage.NewManager(filepath.Join(t.TempDir(), "settings.json"))
	sw := NewSettingsWindow(a, store)

	sw.OpenSettings()
	assert.Equal(t, "20", sw.intervalEntry.Text)
	assert.Equal(t, "Time to stretch!", sw.messageEntry.Text)
	assert.True(t, sw.soundCheck.Checked)
	assert.Equal(t, "10", sw.timeoutEntry.Text)

	sw.intervalEntry.SetText("15")
	sw.messageEntry.SetText("Breathe")
	sw.timeoutEntry.SetText("5")
	sw.save()

	assert.Equal(t, &models.Settings{ReminderInterval: 15, CustomMessage: "Breathe", PlaySound: true, NotificationTimeout: 5}, store.LoadSettings())
}

func TestSettingsWindowRejectsInvalidInterval(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	store := storage.NewManager(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, store.SaveSettings(&models.Settings{ReminderInterval: 30, CustomMessage: "Walk", NotificationTimeout: 8}))

	sw := NewSettingsWindow(a, store)
	sw.OpenSettings()
	sw.intervalEntry.SetText("-5")
	sw.save()

	assert.Equal(t, 30, store.LoadSettings().ReminderInterval)
}

func TestStatusLabelText(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	sl := NewStatusLabel()
	test.WidgetRenderer(sl)
	assert.Equal(t, statusInactiveText, sl.textObj.Text)

	sl.SetActive(true)
	assert.Equal(t, statusActiveText, sl.textObj.Text)
}

func TestFyneNotifier(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	n := NewFyneNotifier(a)
	assert.NoError(t, n.Notify(notify.Notification{Title: notify.Title, Message: "Stretch"}))
}
