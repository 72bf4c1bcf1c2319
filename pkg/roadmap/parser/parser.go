// Package parser turns raw model output into validated roadmap data.
// Both entry points are pure: no I/O, deterministic for a given input.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"studymap/entities"
	"studymap/pkg/roadmap/types"
)

var (
	ErrMalformedAIResponse = errors.New("malformed ai response")
	ErrMalformedGraph      = errors.New("malformed graph")
)

// ParseTasks decodes a strict JSON array of {title, description, dueDay}
// into ordered tasks. Due dates are generatedAt floored to a whole day plus
// (dueDay-1) days. A missing or non-positive dueDay fails the whole
// response; a silently invalid date is worse than a retry.
func ParseTasks(aiText string, generatedAt time.Time) ([]entities.Task, error) {
	var raw []types.RawTask
	if err := json.Unmarshal([]byte(stripFences(aiText)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAIResponse, err)
	}
	if raw == nil {
		// a literal JSON null decodes into a nil slice without error
		return nil, fmt.Errorf("%w: not an array", ErrMalformedAIResponse)
	}

	start := generatedAt.UTC().Truncate(24 * time.Hour)
	tasks := make([]entities.Task, 0, len(raw))
	for i, r := range raw {
		title := strings.TrimSpace(r.Title)
		if title == "" {
			title = fmt.Sprintf("Task %d", i+1)
		}
		if r.DueDay == nil || *r.DueDay < 1 {
			return nil, fmt.Errorf("%w: task %d has no usable dueDay", ErrMalformedAIResponse, i+1)
		}
		day := int(*r.DueDay)
		tasks = append(tasks, entities.Task{
			Title:       title,
			Description: strings.TrimSpace(r.Description),
			DueDate:     start.AddDate(0, 0, day-1),
		})
	}
	return tasks, nil
}

// FilterGraph keeps only nodes whose title matches an allowed title
// (case-insensitively) and only edges whose endpoints both survive, so the
// output is always closed. It never fabricates nodes or edges.
func FilterGraph(aiText string, allowedTitles []string) (*entities.Graph, error) {
	var raw types.RawGraph
	if err := json.Unmarshal([]byte(stripFences(aiText)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGraph, err)
	}
	if raw.Nodes == nil || raw.Edges == nil {
		return nil, fmt.Errorf("%w: missing nodes or edges", ErrMalformedGraph)
	}

	allowed := make(map[string]struct{}, len(allowedTitles))
	for _, t := range allowedTitles {
		allowed[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}

	g := &entities.Graph{Nodes: []entities.GraphNode{}, Edges: []entities.GraphEdge{}}
	kept := make(map[string]struct{})
	for _, n := range raw.Nodes {
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(n.Title))]; !ok {
			continue
		}
		kept[n.ID] = struct{}{}
		g.Nodes = append(g.Nodes, entities.GraphNode{
			ID:             n.ID,
			Title:          n.Title,
			Description:    n.Description,
			Difficulty:     n.Difficulty,
			EstimatedHours: n.EstimatedHours,
		})
	}
	for _, e := range raw.Edges {
		if _, ok := kept[e.From]; !ok {
			continue
		}
		if _, ok := kept[e.To]; !ok {
			continue
		}
		g.Edges = append(g.Edges, entities.GraphEdge{From: e.From, To: e.To, Relationship: e.Relationship})
	}
	return g, nil
}

// stripFences removes a surrounding markdown code fence; chat models wrap
// JSON in ```json blocks even when told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
