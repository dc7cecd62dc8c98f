package referee

import (
	"fmt"
	"time"
)

type Referee struct {
	ID        string
	Name      string
	Image     string
	CreatedAt time.Time
}

func (r Referee) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("referee id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("referee name is required")
	}

	return nil
}
