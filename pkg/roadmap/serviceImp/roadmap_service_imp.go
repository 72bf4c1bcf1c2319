package serviceImp

import (
	"time"

	"studymap/entities"
	"studymap/pkg/ai"
	"studymap/pkg/roadmap/parser"
	"studymap/pkg/roadmap/repository"
)

type kbSearcher interface {
	Search(query string, k int) ([]entities.ResourceChunk, error)
}

type RoadmapSvc struct {
	llm  ai.Client
	repo repository.RoadmapRepository
	kb   kbSearcher // optional, may be nil
}

func NewRoadmapService(llm ai.Client, repo repository.RoadmapRepository, kb kbSearcher) *RoadmapSvc {
	return &RoadmapSvc{llm: llm, repo: repo, kb: kb}
}

// Generate runs prompt → model → parse → create. Nothing is persisted
// unless every step succeeds.
func (s *RoadmapSvc) Generate(uid, goal, level string, totalDays int, completedTopics []string) (*entities.Roadmap, error) {
	kbCtx := s.resourceContext(goal)

	text, err := s.llm.GenerateRoadmap(goal, level, totalDays, completedTopics, kbCtx)
	if err != nil {
		return nil, err
	}
	tasks, err := parser.ParseTasks(text, time.Now())
	if err != nil {
		return nil, err
	}

	m := &entities.Roadmap{
		OwnerID:   uid,
		Goal:      goal,
		Level:     level,
		TotalDays: totalDays,
		Tasks:     tasks,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *RoadmapSvc) ListByOwner(uid string) ([]entities.Roadmap, error) {
	return s.repo.ListByOwner(uid)
}

func (s *RoadmapSvc) Get(id uint, uid string) (*entities.Roadmap, error) {
	return s.repo.FindByID(id, uid)
}

func (s *RoadmapSvc) SetTaskCompleted(id uint, uid string, index int, completed bool) (*entities.Task, error) {
	return s.repo.SetTaskCompleted(id, uid, index, completed)
}

// PrerequisiteGraph returns the cached graph when present; otherwise it
// derives one, filters it against the roadmap's own task titles and caches
// it. A failed derivation leaves the cache absent so the next request
// retries.
func (s *RoadmapSvc) PrerequisiteGraph(id uint, uid string) (*entities.Graph, error) {
	m, err := s.repo.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if m.PrerequisiteGraph != nil {
		return m.PrerequisiteGraph, nil
	}

	titles := make([]string, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		titles = append(titles, t.Title)
	}

	text, err := s.llm.GeneratePrerequisiteGraph(m.Goal, titles)
	if err != nil {
		return nil, err
	}
	g, err := parser.FilterGraph(text, titles)
	if err != nil {
		return nil, err
	}

	won, err := s.repo.CacheGraph(id, uid, g)
	if err != nil {
		return nil, err
	}
	if !won {
		// a concurrent request cached first; serve its graph so both
		// callers observe the same stored value
		cached, err := s.repo.FindByID(id, uid)
		if err != nil {
			return nil, err
		}
		if cached.PrerequisiteGraph != nil {
			return cached.PrerequisiteGraph, nil
		}
	}
	return g, nil
}

// resourceContext assembles ingested study material relevant to the goal.
// KB failures never block generation.
func (s *RoadmapSvc) resourceContext(goal string) string {
	if s.kb == nil {
		return ""
	}
	chunks, err := s.kb.Search(goal, 6)
	if err != nil {
		return ""
	}
	ctx := ""
	for _, ch := range chunks {
		if len(ctx) > 6000 {
			break
		}
		ctx += "\n---\n" + ch.Text
	}
	return ctx
}
