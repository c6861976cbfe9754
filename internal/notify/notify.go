// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize/english"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow    Urgency = 0
	UrgencyNormal Urgency = 1
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low or Normal
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

const completeTimeout = 8000

// SessionComplete builds the notification shown when a meditation plays to
// its end. listened is rounded to whole minutes, with a minimum of one.
func SessionComplete(title string, listened time.Duration) Notification {
	minutes := max(int(listened.Round(time.Minute)/time.Minute), 1)
	return Notification{
		Title:   "Meditation complete",
		Body:    fmt.Sprintf("%s: %s of stillness. Take a moment before moving on.", title, english.Plural(minutes, "minute", "")),
		Icon:    "face-smile",
		Timeout: completeTimeout,
		Urgency: UrgencyLow,
	}
}

// SessionInterrupted builds the notification shown when a meditation stops
// because its audio failed mid-session.
func SessionInterrupted(title string) Notification {
	return Notification{
		Title:   "Meditation interrupted",
		Body:    title + ": the audio stopped unexpectedly. The guided script is still available.",
		Icon:    "dialog-warning",
		Timeout: completeTimeout,
		Urgency: UrgencyNormal,
	}
}
