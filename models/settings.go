package models

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultReminderInterval    = 20 // minutes
	DefaultCustomMessage       = "Time to stretch!"
	DefaultPlaySound           = true
	DefaultNotificationTimeout = 10 // seconds

	MaxReminderInterval    = 7 * 24 * 60 // one week, in minutes
	MaxNotificationTimeout = 60 * 60     // one hour, in seconds
)

var (
	ErrInvalidInterval = errors.New("reminder interval must be between 1 and 10080 minutes")
	ErrInvalidTimeout  = errors.New("notification timeout must be between 1 and 3600 seconds")
	ErrEmptyMessage    = errors.New("reminder message must not be empty")
)

// Settings represents the persisted reminder settings
type Settings struct {
	ReminderInterval    int    `json:"reminder_interval"`    // in minutes
	CustomMessage       string `json:"custom_message"`       // body of every notification
	PlaySound           bool   `json:"play_sound"`           // forwarded to the notifier
	NotificationTimeout int    `json:"notification_timeout"` // in seconds
}

// DefaultSettings returns default reminder settings
func DefaultSettings() *Settings {
	return &Settings{
		ReminderInterval:    DefaultReminderInterval,
		CustomMessage:       DefaultCustomMessage,
		PlaySound:           DefaultPlaySound,
		NotificationTimeout: DefaultNotificationTimeout,
	}
}

// Interval returns the reminder interval as a duration.
func (s *Settings) Interval() time.Duration {
	return time.Duration(s.ReminderInterval) * time.Minute
}

// Timeout returns how long a notification should stay visible.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.NotificationTimeout) * time.Second
}

// ValidateSchedule checks that interval and timeout are in range, which keeps
// both durations positive.
func (s *Settings) ValidateSchedule() error {
	if s.ReminderInterval <= 0 || s.ReminderInterval > MaxReminderInterval {
		return ErrInvalidInterval
	}
	if s.NotificationTimeout <= 0 || s.NotificationTimeout > MaxNotificationTimeout {
		return ErrInvalidTimeout
	}
	return nil
}

// Validate checks the constraints the settings form enforces before saving.
func (s *Settings) Validate() error {
	if err := s.ValidateSchedule(); err != nil {
		return err
	}
	if strings.TrimSpace(s.CustomMessage) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// PartialSettings mirrors Settings with every key optional, so a decoded
// file can tell a missing key apart from a zero value.
type PartialSettings struct {
	ReminderInterval    *int    `json:"reminder_interval"`
	CustomMessage       *string `json:"custom_message"`
	PlaySound           *bool   `json:"play_sound"`
	NotificationTimeout *int    `json:"notification_timeout"`
}

// Normalize fills every missing key with its default value.
func (p PartialSettings) Normalize() *Settings {
	s := DefaultSettings()
	if p.ReminderInterval != nil {
		s.ReminderInterval = *p.ReminderInterval
	}
	if p.CustomMessage != nil {
		s.CustomMessage = *p.CustomMessage
	}
	if p.PlaySound != nil {
		s.PlaySound = *p.PlaySound
	}
	if p.NotificationTimeout != nil {
		s.NotificationTimeout = *p.NotificationTimeout
	}
	return s
}

// ParseSettingsInput builds a settings record from raw form text.
// Interval and timeout must be integers within their limits and the message must not be blank.
func ParseSettingsInput(interval, message, timeout string, playSound bool) (*Settings, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(interval))
	if err != nil || minutes <= 0 || minutes > MaxReminderInterval {
		return nil, ErrInvalidInterval
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(timeout))
	if err != nil || seconds <= 0 || seconds > MaxNotificationTimeout {
		return nil, ErrInvalidTimeout
	}

	s := &Settings{
		ReminderInterval:    minutes,
		CustomMessage:       strings.TrimSpace(message),
		PlaySound:           playSound,
		NotificationTimeout: seconds,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
