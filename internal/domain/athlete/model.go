package athlete

import (
	"fmt"
	"time"
)

// Athlete is a registered player, optionally linked to an admin team.
type Athlete struct {
	ID        string
	Name      string
	Document  string
	Image     string
	TeamID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Athlete) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("athlete id is required")
	}
	if a.Name == "" {
		return fmt.Errorf("athlete name is required")
	}

	return nil
}
