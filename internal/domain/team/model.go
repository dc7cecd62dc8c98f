package team

import (
	"fmt"
	"time"
)

// Team is a club on the public standings page.
type Team struct {
	ID          string
	Name        string
	City        string
	State       string
	Logo        string
	GamesPlayed int
	Wins        int
	Draws       int
	Losses      int
	Points      int
	CreatedAt   time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.City == "" {
		return fmt.Errorf("team city is required")
	}
	if t.State == "" {
		return fmt.Errorf("team state is required")
	}

	return nil
}
