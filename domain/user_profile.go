package domain

import (
	"strings"
	"time"
)

type UserProfile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Interests   []string  `json:"interests"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *UserProfile) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return newValidationError("id", "user id cannot be empty")
	}
	return nil
}
