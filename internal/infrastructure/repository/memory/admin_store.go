package memory

import (
	"sync"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
	"github.com/copa-nordeste/copa-api/internal/domain/athlete"
	"github.com/copa-nordeste/copa-api/internal/domain/championship"
)

// AdminStore holds the admin-side tables under one mutex so cascading
// writes (championship delete, team delete) stay atomic, the way the
// SQL driver keeps them in one transaction.
type AdminStore struct {
	mu            sync.RWMutex
	championships map[string]championship.Championship
	entries       map[string]championship.Entry
	teams         map[string]adminteam.Team
	athletes      map[string]athlete.Athlete
}

func NewAdminStore() *AdminStore {
	return &AdminStore{
		championships: make(map[string]championship.Championship),
		entries:       make(map[string]championship.Entry),
		teams:         make(map[string]adminteam.Team),
		athletes:      make(map[string]athlete.Athlete),
	}
}
