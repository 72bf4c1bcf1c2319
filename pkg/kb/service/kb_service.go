package service

import "studymap/entities"

type KBService interface {
	UpsertResource(title, tags, text, sourceURL string) (*entities.Resource, int, error)
	Search(query string, k int) ([]entities.ResourceChunk, error)
	ResourcesMeta(ids []uint) (map[uint]entities.Resource, error)
}
