//go:build !linux

package notify

import "errors"

// New reports that desktop notifications are unavailable off Linux.
func New() (Notifier, error) {
	return nil, errors.New("desktop notifications require D-Bus")
}
