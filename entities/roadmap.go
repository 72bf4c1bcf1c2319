package entities

import "time"

type Roadmap struct {
	RoadmapID         uint      `gorm:"primaryKey" json:"roadmap_id"`
	OwnerID           string    `json:"owner_id" gorm:"index"`
	Goal              string    `json:"goal"`
	Level             string    `json:"level"` // beginner|intermediate|advanced
	TotalDays         int       `json:"total_days"`
	Tasks             []Task    `gorm:"serializer:json" json:"tasks"`
	PrerequisiteGraph *Graph    `gorm:"serializer:json" json:"prerequisite_graph"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Task has no identity of its own; it is addressed by index within its roadmap.
type Task struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Completed   bool      `json:"completed"`
}

// Graph is derived once per roadmap and cached on the row.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

type GraphNode struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	Difficulty     string  `json:"difficulty,omitempty"`
	EstimatedHours float64 `json:"estimated_hours,omitempty"`
}

type GraphEdge struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Relationship string `json:"relationship,omitempty"`
}
