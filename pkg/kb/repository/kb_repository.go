package repository

import "studymap/entities"

type KBRepository interface {
	CreateResource(*entities.Resource) error
	BulkInsertChunks([]entities.ResourceChunk) error
	AllChunks() ([]entities.ResourceChunk, error)
	ResourcesByIDs(ids []uint) (map[uint]entities.Resource, error)
}
