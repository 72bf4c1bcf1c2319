package service

import "studymap/entities"

type RoadmapService interface {
	Generate(uid, goal, level string, totalDays int, completedTopics []string) (*entities.Roadmap, error)
	ListByOwner(uid string) ([]entities.Roadmap, error)
	Get(id uint, uid string) (*entities.Roadmap, error)
	SetTaskCompleted(id uint, uid string, index int, completed bool) (*entities.Task, error)
	PrerequisiteGraph(id uint, uid string) (*entities.Graph, error)
}
