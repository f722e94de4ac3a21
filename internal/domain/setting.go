package domain

import "time"

// SiteSetting is one key/value row of the administrative site configuration
type SiteSetting struct {
	ID          int64
	Key         string
	Value       *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
