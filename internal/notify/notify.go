// Package notify provides desktop notifications via D-Bus.
package notify

import "strings"

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Track is what a now-playing notification shows.
type Track struct {
	Location string
	Label    string
	Artist   string
	Album    string
}

// NowPlaying builds a low-urgency notification for t. The album art next to
// a local track becomes the icon when withArt is set.
func NowPlaying(t Track, timeout int32, withArt bool) Notification {
	var body []string
	if t.Artist != "" {
		body = append(body, t.Artist)
	}
	if t.Album != "" {
		body = append(body, t.Album)
	}
	n := Notification{
		Title:   t.Label,
		Body:    strings.Join(body, " · "),
		Timeout: timeout,
		Urgency: UrgencyLow,
	}
	if withArt {
		n.Icon = FindAlbumArtPath(t.Location)
	}
	return n
}
