package competition

import (
	"fmt"
	"time"
)

type Phase string

const (
	PhaseGroups      Phase = "groups"
	PhaseElimination Phase = "elimination"
	PhaseFinal       Phase = "final"
)

func ParsePhase(raw string) (Phase, error) {
	switch Phase(raw) {
	case PhaseGroups, PhaseElimination, PhaseFinal:
		return Phase(raw), nil
	default:
		return "", fmt.Errorf("unknown competition phase %q", raw)
	}
}

// Competition is a public tournament edition.
type Competition struct {
	ID          string
	Name        string
	Description string
	StartDate   string
	EndDate     string
	Phase       Phase
	IsActive    bool
	CreatedAt   time.Time
}

func (c Competition) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("competition id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("competition name is required")
	}
	if _, err := ParsePhase(string(c.Phase)); err != nil {
		return err
	}

	return nil
}
