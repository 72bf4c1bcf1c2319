package repository

import (
	"errors"

	"studymap/entities"
)

var ErrTaskIndexOutOfRange = errors.New("task index out of range")

// RoadmapRepository is owner-scoped: every lookup and mutation carries the
// owning uid, and a wrong owner behaves like a missing record.
type RoadmapRepository interface {
	Create(r *entities.Roadmap) error
	ListByOwner(uid string) ([]entities.Roadmap, error)
	FindByID(id uint, uid string) (*entities.Roadmap, error)
	SetTaskCompleted(id uint, uid string, index int, completed bool) (*entities.Task, error)
	// CacheGraph sets the prerequisite graph only when none is stored yet
	// and reports whether this call performed the write.
	CacheGraph(id uint, uid string, g *entities.Graph) (bool, error)
}
