package repositoryImp

import (
	"gorm.io/gorm"

	"studymap/entities"
	"studymap/pkg/roadmap/repository"
)

type roadmapRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RoadmapRepository { return &roadmapRepo{db} }

func (r *roadmapRepo) Create(m *entities.Roadmap) error { return r.db.Create(m).Error }

func (r *roadmapRepo) ListByOwner(uid string) ([]entities.Roadmap, error) {
	out := []entities.Roadmap{}
	if err := r.db.Where("owner_id = ?", uid).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *roadmapRepo) FindByID(id uint, uid string) (*entities.Roadmap, error) {
	var m entities.Roadmap
	if err := r.db.Where("roadmap_id = ? AND owner_id = ?", id, uid).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *roadmapRepo) SetTaskCompleted(id uint, uid string, index int, completed bool) (*entities.Task, error) {
	m, err := r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(m.Tasks) {
		return nil, repository.ErrTaskIndexOutOfRange
	}
	m.Tasks[index].Completed = completed
	// Tasks live in one JSON column, so the whole list is written back.
	if err := r.db.Model(m).Update("tasks", m.Tasks).Error; err != nil {
		return nil, err
	}
	return &m.Tasks[index], nil
}

func (r *roadmapRepo) CacheGraph(id uint, uid string, g *entities.Graph) (bool, error) {
	// Conditional update: the NULL check makes first-write-wins atomic, so
	// two concurrent derivations cannot overwrite each other.
	res := r.db.Model(&entities.Roadmap{}).
		Where("roadmap_id = ? AND owner_id = ? AND prerequisite_graph IS NULL", id, uid).
		Update("prerequisite_graph", g)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
