package tray

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"stretchreminder/logger"
	"stretchreminder/models"
	"stretchreminder/notify"
	"stretchreminder/reminder"
)

// Menu labels for the toggle entry
const (
	LabelEnable  = "Enable Reminders"
	LabelDisable = "Disable Reminders"
)

// Glyph selects which tray icon is shown
type Glyph int

const (
	GlyphInactive Glyph = iota // red bar
	GlyphActive                // green circle
)

// State is what the tray should currently display
type State struct {
	Enabled     bool
	Glyph       Glyph
	ToggleLabel string
}

// Indicator renders controller state, e.g. a tray icon and menu
type Indicator interface {
	Show(state State)
}

// SettingsLoader is the part of the settings store the controller reads
type SettingsLoader interface {
	LoadSettings() *models.Settings
}

// SettingsOpener opens the settings form without blocking the caller
type SettingsOpener interface {
	OpenSettings()
}

// Status describes the running reminder loop, if any
type Status struct {
	Enabled        bool
	RunID          string
	Settings       *models.Settings // snapshot the running loop uses
	PendingChanges bool             // settings changed since the loop started
}

// Controller owns the enabled flag and the single reminder loop.
type Controller struct {
	store     SettingsLoader
	notifier  notify.Notifier
	clock     reminder.Clock
	indicator Indicator
	opener    SettingsOpener

	mu      sync.Mutex
	enabled bool
	cancel  context.CancelFunc
	done    chan struct{}
	runID   string
	running *models.Settings
	pending bool
}

// NewController creates a controller in the disabled state
func NewController(store SettingsLoader, notifier notify.Notifier, clock reminder.Clock, indicator Indicator) *Controller {
	if clock == nil {
		clock = reminder.RealClock{}
	}
	return &Controller{
		store:     store,
		notifier:  notifier,
		clock:     clock,
		indicator: indicator,
	}
}

// SetSettingsOpener wires the "Settings" menu entry
func (c *Controller) SetSettingsOpener(opener SettingsOpener) {
	c.opener = opener
}

// Enabled reports whether a reminder loop is running
func (c *Controller) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// State returns what the indicator should display
func (c *Controller) State() State {
	return stateFor(c.Enabled())
}

// Status returns details about the running loop
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		Enabled:        c.enabled,
		RunID:          c.runID,
		Settings:       c.running,
		PendingChanges: c.pending,
	}
}

// Refresh pushes the current state to the indicator
func (c *Controller) Refresh() {
	c.show(c.State())
}

// Toggle starts reminders when disabled and stops them when enabled.
func (c *Controller) Toggle() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.enabled {
		c.stopLocked()
		return nil
	}
	return c.startLocked()
}

// Enable starts reminders unless they are already running
func (c *Controller) Enable() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.enabled {
		return nil
	}
	return c.startLocked()
}

// Disable stops reminders and waits for the loop to exit
func (c *Controller) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.enabled {
		c.stopLocked()
	}
}

// Shutdown stops any running loop. It is bound to the "Exit" menu entry.
func (c *Controller) Shutdown() {
	logger.Info("Shutting down")
	c.Disable()
}

// OpenSettings shows the settings form
func (c *Controller) OpenSettings() {
	if c.opener == nil {
		logger.Warn("No settings form available")
		return
	}
	c.opener.OpenSettings()
}

// SettingsChanged records that the stored settings differ from the running
// snapshot. The running loop is left untouched until the next enable.
func (c *Controller) SettingsChanged(settings *models.Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled || c.running == nil || *c.running == *settings {
		return
	}
	c.pending = true
	logger.Info("Settings changed, will apply the next time reminders are enabled",
		"run_id", c.runID, "interval", settings.ReminderInterval)
}

func (c *Controller) startLocked() error {
	settings := c.store.LoadSettings()
	if err := settings.ValidateSchedule(); err != nil {
		return fmt.Errorf("start reminders: %w", err)
	}

	runID := uuid.New().String()
	sched := reminder.NewScheduler(settings, c.notifier, c.clock, runID)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Reminder loop exited", "run_id", runID, "error", err)
		}
	}()

	c.cancel = cancel
	c.done = done
	c.runID = runID
	c.running = settings
	c.pending = false
	c.enabled = true

	logger.Info("Reminders enabled", "run_id", runID, "interval", settings.ReminderInterval)
	c.show(stateFor(true))
	return nil
}

func (c *Controller) stopLocked() {
	c.cancel()
	<-c.done

	logger.Info("Reminders disabled", "run_id", c.runID)

	c.cancel = nil
	c.done = nil
	c.runID = ""
	c.running = nil
	c.pending = false
	c.enabled = false

	c.show(stateFor(false))
}

func (c *Controller) show(state State) {
	if c.indicator != nil {
		c.indicator.Show(state)
	}
}

func stateFor(enabled bool) State {
	if enabled {
		return State{Enabled: true, Glyph: GlyphActive, ToggleLabel: LabelDisable}
	}
	return State{Enabled: false, Glyph: GlyphInactive, ToggleLabel: LabelEnable}
}
