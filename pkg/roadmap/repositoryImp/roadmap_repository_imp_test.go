package repositoryImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studymap/entities"
	"studymap/pkg/roadmap/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Roadmap{}))
	return db
}

func seedRoadmap(t *testing.T, repo repository.RoadmapRepository, uid string) *entities.Roadmap {
	t.Helper()
	m := &entities.Roadmap{
		OwnerID:   uid,
		Goal:      "Learn Go",
		Level:     "beginner",
		TotalDays: 5,
		Tasks: []entities.Task{
			{Title: "Vars", Description: "Basics", DueDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
			{Title: "Goroutines", Description: "Concurrency", DueDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)},
		},
	}
	require.NoError(t, repo.Create(m))
	return m
}

func TestOwnerScoping(t *testing.T) {
	repo := New(newTestDB(t))
	m := seedRoadmap(t, repo, "alice")

	got, err := repo.FindByID(m.RoadmapID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", got.Goal)
	assert.Len(t, got.Tasks, 2)

	_, err = repo.FindByID(m.RoadmapID, "bob")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	list, err := repo.ListByOwner("bob")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListByOwnerNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)
	first := seedRoadmap(t, repo, "alice")
	second := seedRoadmap(t, repo, "alice")
	// sqlite timestamps are not guaranteed to differ within a test; force it
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)

	list, err := repo.ListByOwner("alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.RoadmapID, list[0].RoadmapID)
	assert.Equal(t, first.RoadmapID, list[1].RoadmapID)
}

func TestSetTaskCompleted(t *testing.T) {
	repo := New(newTestDB(t))
	m := seedRoadmap(t, repo, "alice")

	task, err := repo.SetTaskCompleted(m.RoadmapID, "alice", 1, true)
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.Equal(t, "Goroutines", task.Title)

	got, err := repo.FindByID(m.RoadmapID, "alice")
	require.NoError(t, err)
	assert.False(t, got.Tasks[0].Completed)
	assert.True(t, got.Tasks[1].Completed)
}

func TestSetTaskCompletedOutOfRange(t *testing.T) {
	repo := New(newTestDB(t))
	m := seedRoadmap(t, repo, "alice")

	for _, idx := range []int{-1, 2, 5} {
		_, err := repo.SetTaskCompleted(m.RoadmapID, "alice", idx, true)
		assert.ErrorIs(t, err, repository.ErrTaskIndexOutOfRange)
	}

	// roadmap left unmodified
	got, err := repo.FindByID(m.RoadmapID, "alice")
	require.NoError(t, err)
	assert.False(t, got.Tasks[0].Completed)
	assert.False(t, got.Tasks[1].Completed)
}

func TestCacheGraphSetIfAbsent(t *testing.T) {
	repo := New(newTestDB(t))
	m := seedRoadmap(t, repo, "alice")

	g1 := &entities.Graph{
		Nodes: []entities.GraphNode{{ID: "n1", Title: "Vars"}},
		Edges: []entities.GraphEdge{},
	}
	won, err := repo.CacheGraph(m.RoadmapID, "alice", g1)
	require.NoError(t, err)
	assert.True(t, won)

	g2 := &entities.Graph{
		Nodes: []entities.GraphNode{{ID: "x", Title: "Goroutines"}},
		Edges: []entities.GraphEdge{},
	}
	won, err = repo.CacheGraph(m.RoadmapID, "alice", g2)
	require.NoError(t, err)
	assert.False(t, won, "second write must lose")

	got, err := repo.FindByID(m.RoadmapID, "alice")
	require.NoError(t, err)
	require.NotNil(t, got.PrerequisiteGraph)
	require.Len(t, got.PrerequisiteGraph.Nodes, 1)
	assert.Equal(t, "n1", got.PrerequisiteGraph.Nodes[0].ID)
}

func TestCacheGraphWrongOwner(t *testing.T) {
	repo := New(newTestDB(t))
	m := seedRoadmap(t, repo, "alice")

	won, err := repo.CacheGraph(m.RoadmapID, "bob", &entities.Graph{Nodes: []entities.GraphNode{}, Edges: []entities.GraphEdge{}})
	require.NoError(t, err)
	assert.False(t, won)

	got, err := repo.FindByID(m.RoadmapID, "alice")
	require.NoError(t, err)
	assert.Nil(t, got.PrerequisiteGraph)
}
