package ui

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stretchreminder/icon"
	"stretchreminder/models"
	"stretchreminder/notify"
	"stretchreminder/reminder"
	"stretchreminder/storage"
	"stretchreminder/tray"
)

// trayTestApp adds the desktop tray calls to the headless test app
type trayTestApp struct {
	fyne.App

	mu    sync.Mutex
	menu  *fyne.Menu
	icon  fyne.Resource
	quits int
}

func (a *trayTestApp) SetSystemTrayMenu(menu *fyne.Menu) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.menu = menu
}

func (a *trayTestApp) SetSystemTrayIcon(res fyne.Resource) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.icon = res
}

func (a *trayTestApp) Quit() {
	a.mu.Lock()
	a.quits++
	a.mu.Unlock()
	a.App.Quit()
}

func (a *trayTestApp) iconName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.icon == nil {
		return ""
	}
	return a.icon.Name()
}

func (a *trayTestApp) labels() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	var labels []string
	for _, item := range a.menu.Items {
		labels = append(labels, item.Label)
	}
	return labels
}

type trayFixture struct {
	app   *trayTestApp
	tray  *TrayApp
	ctrl  *tray.Controller
	clock *reminder.FakeClock
	sent  chan notify.Notification
	store *storage.Manager
}

func newTrayFixture(t *testing.T, settings *models.Settings) *trayFixture {
	t.Helper()
	f := &trayFixture{
		app:   &trayTestApp{App: test.NewApp()},
		clock: reminder.NewFakeClock(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)),
		sent:  make(chan notify.Notification, 16),
		store: storage.NewManager(filepath.Join(t.TempDir(), "settings.json")),
	}
	if settings != nil {
		require.NoError(t, f.store.SaveSettings(settings))
	}

	ta, err := NewTrayApp(f.app, f.store)
	require.NoError(t, err)
	f.tray = ta

	notifier := notify.NotifierFunc(func(n notify.Notification) error {
		f.sent <- n
		return nil
	})
	f.ctrl = tray.NewController(f.store, notifier, f.clock, ta)
	ta.Bind(f.ctrl)
	t.Cleanup(f.ctrl.Shutdown)
	return f
}

func (f *trayFixture) item(t *testing.T, index int) *fyne.MenuItem {
	t.Helper()
	f.app.mu.Lock()
	defer f.app.mu.Unlock()
	require.NotNil(t, f.app.menu)
	require.Greater(t, len(f.app.menu.Items), index)
	return f.app.menu.Items[index]
}

func waitForWait(t *testing.T, clock *reminder.FakeClock) time.Duration {
	t.Helper()
	select {
	case d := <-clock.Waits:
		return d
	case <-time.After(2 * time.Second):
		t.Fatal("reminder loop never started waiting")
		return 0
	}
}

func TestNewTrayAppRequiresDesktop(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	_, err := NewTrayApp(a, storage.NewManager(filepath.Join(t.TempDir(), "settings.json")))
	assert.ErrorIs(t, err, ErrNoSystemTray)
}

func TestTrayMenuBinding(t *testing.T) {
	f := newTrayFixture(t, nil)

	assert.Equal(t, []string{tray.LabelEnable, "Settings", "Exit"}, f.app.labels())
	assert.True(t, f.item(t, 2).IsQuit)
	assert.Equal(t, "inactive.png", f.app.iconName())

	f.item(t, 0).Action()
	assert.True(t, f.ctrl.Enabled())
	assert.Equal(t, []string{tray.LabelDisable, "Settings", "Exit"}, f.app.labels())
	assert.Equal(t, "active.png", f.app.iconName())

	f.item(t, 0).Action()
	assert.False(t, f.ctrl.Enabled())
	assert.Equal(t, []string{tray.LabelEnable, "Settings", "Exit"}, f.app.labels())
	assert.Equal(t, "inactive.png", f.app.iconName())
}

func TestTraySettingsEntryOpensForm(t *testing.T) {
	f := newTrayFixture(t, &models.Settings{ReminderInterval: 30, CustomMessage: "Walk", PlaySound: false, NotificationTimeout: 8})

	f.item(t, 1).Action()
	assert.Equal(t, "30", f.tray.settings.intervalEntry.Text)
	assert.Equal(t, "Walk", f.tray.settings.messageEntry.Text)
	assert.False(t, f.tray.settings.soundCheck.Checked)
	assert.Equal(t, "8", f.tray.settings.timeoutEntry.Text)
}

func TestTrayExitStopsRunningLoop(t *testing.T) {
	f := newTrayFixture(t, &models.Settings{ReminderInterval: 1, CustomMessage: "Stand up", PlaySound: true, NotificationTimeout: 5})

	f.item(t, 0).Action()
	require.True(t, f.ctrl.Enabled())
	assert.Equal(t, time.Minute, waitForWait(t, f.clock))

	f.item(t, 2).Action()
	assert.False(t, f.ctrl.Enabled())
	assert.Equal(t, 1, f.app.quits)

	// The cancelled loop must not deliver once its wait would have fired.
	f.clock.Advance(time.Minute)
	select {
	case n := <-f.sent:
		t.Fatalf("notification after exit: %+v", n)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTrayToggleErrorReloadsSettings(t *testing.T) {
	f := newTrayFixture(t, nil)
	require.NoError(t, f.store.SaveSettings(&models.Settings{ReminderInterval: 0, CustomMessage: "Stretch", NotificationTimeout: 5}))

	f.tray.settings.OpenSettings()
	f.tray.settings.intervalEntry.SetText("stale")

	f.item(t, 0).Action()
	assert.False(t, f.ctrl.Enabled())
	assert.Equal(t, "0", f.tray.settings.intervalEntry.Text)
	assert.Equal(t, tray.LabelEnable, f.item(t, 0).Label)
	assert.Equal(t, 0, f.clock.Pending())
}

func TestStatusLabelColors(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	sl := NewStatusLabel()
	test.WidgetRenderer(sl)
	assert.Equal(t, icon.Red, sl.bgRect.FillColor)

	sl.SetActive(true)
	assert.Equal(t, icon.Green, sl.bgRect.FillColor)

	sl.SetActive(false)
	assert.Equal(t, icon.Red, sl.bgRect.FillColor)
}
