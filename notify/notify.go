package notify

import (
	"fmt"
	"io"
	"time"

	"github.com/ncruces/zenity"

	"stretchreminder/logger"
)

// Title is shown on every reminder notification
const Title = "Stretch Reminder!"

// Notification is a single reminder handed to a Notifier
type Notification struct {
	Title   string
	Message string
	Timeout time.Duration // how long the notification should stay visible
	Sound   bool          // whether an audible alert was requested
}

// Notifier delivers reminders to the user
type Notifier interface {
	Notify(n Notification) error
}

// NotifierFunc adapts a plain function to the Notifier interface
type NotifierFunc func(n Notification) error

func (f NotifierFunc) Notify(n Notification) error {
	return f(n)
}

// ZenityNotifier sends native desktop notifications through zenity.
// Display time and sound follow the desktop's own notification settings.
type ZenityNotifier struct{}

// NewZenityNotifier creates a zenity-backed notifier
func NewZenityNotifier() *ZenityNotifier {
	return &ZenityNotifier{}
}

func (z *ZenityNotifier) Notify(n Notification) error {
	logger.Debug("Sending zenity notification", "message", n.Message, "timeout", n.Timeout)
	if err := zenity.Notify(n.Message, zenity.Title(n.Title), zenity.InfoIcon); err != nil {
		return fmt.Errorf("zenity notify: %w", err)
	}
	return nil
}

// ConsoleNotifier writes reminders to a terminal, ringing the bell when
// the notification asks for sound.
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier creates a notifier that prints to out
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (c *ConsoleNotifier) Notify(n Notification) error {
	bell := ""
	if n.Sound {
		bell = "\a"
	}
	_, err := fmt.Fprintf(c.out, "%s[%s] %s: %s\n", bell, time.Now().Format("15:04"), n.Title, n.Message)
	return err
}

// Multi fans a notification out to every notifier and returns the first error.
func Multi(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(n Notification) error {
		var firstErr error
		for _, nt := range notifiers {
			if err := nt.Notify(n); err != nil {
				logger.Warn("Notifier failed", "error", err)
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		return firstErr
	})
}
