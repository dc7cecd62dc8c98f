package match

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
)

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusScheduled, StatusLive, StatusFinished:
		return Status(raw), nil
	default:
		return "", fmt.Errorf("unknown match status %q", raw)
	}
}

// Match is a fixture between two public teams. Scores stay nil until the
// match has been played.
type Match struct {
	ID            string
	HomeTeamID    string
	AwayTeamID    string
	HomeScore     *int
	AwayScore     *int
	MatchDate     string
	Status        Status
	CompetitionID string
	CreatedAt     time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.MatchDate == "" {
		return fmt.Errorf("match date is required")
	}
	if _, err := ParseStatus(string(m.Status)); err != nil {
		return err
	}

	return nil
}
