package repositoryImp

import (
	"gorm.io/gorm"

	"studymap/entities"
	"studymap/pkg/kb/repository"
)

type kbRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.KBRepository { return &kbRepo{db} }

func (r *kbRepo) CreateResource(res *entities.Resource) error { return r.db.Create(res).Error }

func (r *kbRepo) BulkInsertChunks(cs []entities.ResourceChunk) error { return r.db.Create(&cs).Error }

func (r *kbRepo) AllChunks() ([]entities.ResourceChunk, error) {
	var cs []entities.ResourceChunk
	return cs, r.db.Find(&cs).Error
}

func (r *kbRepo) ResourcesByIDs(ids []uint) (map[uint]entities.Resource, error) {
	m := map[uint]entities.Resource{}
	if len(ids) == 0 {
		return m, nil
	}
	var rs []entities.Resource
	if err := r.db.Where("resource_id IN ?", ids).Find(&rs).Error; err != nil {
		return nil, err
	}
	for i := range rs {
		m[rs[i].ResourceID] = rs[i]
	}
	return m, nil
}
