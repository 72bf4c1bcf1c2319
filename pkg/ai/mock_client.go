package ai

import (
	"encoding/json"
	"fmt"

	"studymap/pkg/roadmap/types"
)

type mockClient struct{}

// NewMock returns a client used when no API key is configured. Its output
// goes through the same parsing path as real model output.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) GenerateRoadmap(goal, level string, totalDays int, completedTopics []string, kbCtx string) (string, error) {
	steps := []string{
		"Survey the fundamentals of " + goal,
		"Core concepts of " + goal,
		"Hands-on practice: " + goal,
		"Review and self-test: " + goal,
	}
	if totalDays < len(steps) {
		steps = steps[:totalDays]
	}
	raw := make([]types.RawTask, 0, len(steps))
	for i, title := range steps {
		day := float64(1 + i*totalDays/len(steps))
		raw = append(raw, types.RawTask{
			Title:       title,
			Description: fmt.Sprintf("Mock %s-level step %d", level, i+1),
			DueDay:      &day,
		})
	}
	b, _ := json.Marshal(raw)
	return string(b), nil
}

func (m *mockClient) GeneratePrerequisiteGraph(goal string, taskTitles []string) (string, error) {
	g := types.RawGraph{Nodes: []types.RawNode{}, Edges: []types.RawEdge{}}
	for i, title := range taskTitles {
		id := fmt.Sprintf("n%d", i+1)
		g.Nodes = append(g.Nodes, types.RawNode{ID: id, Title: title, Difficulty: "medium", EstimatedHours: 2})
		if i > 0 {
			g.Edges = append(g.Edges, types.RawEdge{
				From:         fmt.Sprintf("n%d", i),
				To:           id,
				Relationship: "prerequisite",
			})
		}
	}
	b, _ := json.Marshal(g)
	return string(b), nil
}
