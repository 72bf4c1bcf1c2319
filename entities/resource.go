package entities

import "time"

type Resource struct {
	ResourceID uint      `gorm:"primaryKey" json:"resource_id"`
	Title      string    `json:"title"`
	SourceURL  string    `json:"source_url"`
	Tags       string    `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
}

type ResourceChunk struct {
	ChunkID    uint      `gorm:"primaryKey" json:"chunk_id"`
	ResourceID uint      `gorm:"index" json:"resource_id"`
	Ord        int       `json:"ord"`
	Text       string    `json:"text"`
	Embedding  []byte    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
