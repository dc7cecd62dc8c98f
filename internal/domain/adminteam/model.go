package adminteam

import (
	"fmt"
	"time"
)

// Team is an admin-registered club with its contact details.
type Team struct {
	ID          string
	Name        string
	Image       string
	Responsible string
	Phone       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("admin team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("admin team name is required")
	}

	return nil
}
