package championship

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicateEntry signals an attempt to enroll a team twice in the
// same championship. The (championship, team) pair is unique.
var ErrDuplicateEntry = errors.New("team already enrolled in championship")

// Championship is an admin-managed tournament. Dates are ISO yyyy-mm-dd
// strings; StartDate must not be after EndDate.
type Championship struct {
	ID        string
	Name      string
	Image     string
	StartDate string
	EndDate   string
	CreatedAt time.Time
}

func (c Championship) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("championship id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("championship name is required")
	}
	if c.StartDate == "" || c.EndDate == "" {
		return fmt.Errorf("championship dates are required")
	}
	if c.StartDate > c.EndDate {
		return fmt.Errorf("championship start date is after end date")
	}

	return nil
}

// Entry is one roster row linking a championship to an admin team.
type Entry struct {
	ID             string
	ChampionshipID string
	TeamID         string
	CreatedAt      time.Time
}
