package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var genAt = time.Date(2025, 3, 10, 15, 42, 0, 0, time.UTC)

func TestParseTasksOrderAndDates(t *testing.T) {
	in := `[
		{"title":"Vars","description":"Basics","dueDay":1},
		{"title":"Goroutines","description":"Concurrency","dueDay":3}
	]`
	tasks, err := ParseTasks(in, genAt)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	day0 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Vars", tasks[0].Title)
	assert.Equal(t, "Basics", tasks[0].Description)
	assert.Equal(t, day0, tasks[0].DueDate)
	assert.Equal(t, "Goroutines", tasks[1].Title)
	assert.Equal(t, day0.AddDate(0, 0, 2), tasks[1].DueDate)
	assert.False(t, tasks[0].Completed)
	assert.False(t, tasks[1].Completed)
}

func TestParseTasksSyntheticTitle(t *testing.T) {
	tasks, err := ParseTasks(`[{"dueDay":2},{"title":"  ","dueDay":4}]`, genAt)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Task 1", tasks[0].Title)
	assert.Equal(t, "Task 2", tasks[1].Title)
	assert.Equal(t, "", tasks[0].Description)
}

func TestParseTasksFractionalDueDayFloors(t *testing.T) {
	tasks, err := ParseTasks(`[{"title":"A","dueDay":2.7}]`, genAt)
	require.NoError(t, err)
	assert.Equal(t, genAt.Truncate(24*time.Hour).AddDate(0, 0, 1), tasks[0].DueDate)
}

func TestParseTasksRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"not json":       `once upon a time`,
		"null literal":   `null`,
		"object":         `{"title":"A","dueDay":1}`,
		"fenced object":  "```json\n{\"tasks\":[]}\n```",
		"missing dueDay": `[{"title":"A","description":"x"}]`,
		"zero dueDay":    `[{"title":"A","dueDay":0}]`,
		"string dueDay":  `[{"title":"A","dueDay":"three"}]`,
	}
	for name, in := range cases {
		_, err := ParseTasks(in, genAt)
		require.Error(t, err, name)
		assert.ErrorIs(t, err, ErrMalformedAIResponse, name)
	}
}

func TestParseTasksStripsCodeFence(t *testing.T) {
	in := "```json\n[{\"title\":\"A\",\"dueDay\":1}]\n```"
	tasks, err := ParseTasks(in, genAt)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "A", tasks[0].Title)
}

const rawGraph = `{
	"nodes":[
		{"id":"n1","title":"Vars","difficulty":"easy","estimatedHours":2},
		{"id":"n2","title":"GOROUTINES","description":"conc","estimatedHours":5},
		{"id":"n3","title":"Quantum Physics","difficulty":"hard"}
	],
	"edges":[
		{"from":"n1","to":"n2","relationship":"prerequisite"},
		{"from":"n1","to":"n3","relationship":"prerequisite"},
		{"from":"n9","to":"n2"}
	]
}`

func TestFilterGraphDropsUnknownTitlesAndDanglingEdges(t *testing.T) {
	g, err := FilterGraph(rawGraph, []string{"Vars", "Goroutines"})
	require.NoError(t, err)

	require.Len(t, g.Nodes, 2)
	assert.Equal(t, "n1", g.Nodes[0].ID)
	assert.Equal(t, "n2", g.Nodes[1].ID)

	require.Len(t, g.Edges, 1)
	assert.Equal(t, "n1", g.Edges[0].From)
	assert.Equal(t, "n2", g.Edges[0].To)
}

func TestFilterGraphClosure(t *testing.T) {
	g, err := FilterGraph(rawGraph, []string{"goroutines"})
	require.NoError(t, err)
	ids := map[string]bool{}
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}
	for _, e := range g.Edges {
		assert.True(t, ids[e.From], "edge from %s references missing node", e.From)
		assert.True(t, ids[e.To], "edge to %s references missing node", e.To)
	}
}

func TestFilterGraphNeverFabricates(t *testing.T) {
	g, err := FilterGraph(rawGraph, []string{"Vars", "Goroutines", "Quantum Physics"})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(g.Nodes), 3)
	assert.LessOrEqual(t, len(g.Edges), 3)
}

func TestFilterGraphEmptyAllowedSet(t *testing.T) {
	g, err := FilterGraph(rawGraph, nil)
	require.NoError(t, err)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
}

func TestFilterGraphRejectsBadInput(t *testing.T) {
	for name, in := range map[string]string{
		"not json":      `nope`,
		"array":         `[{"id":"n1"}]`,
		"missing nodes": `{"edges":[]}`,
		"missing edges": `{"nodes":[]}`,
	} {
		_, err := FilterGraph(in, []string{"Vars"})
		require.Error(t, err, name)
		assert.ErrorIs(t, err, ErrMalformedGraph, name)
	}
}
