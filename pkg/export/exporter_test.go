package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymap/entities"
)

func TestBuildWorkbook(t *testing.T) {
	created := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	day0 := created.Truncate(24 * time.Hour)
	m := &entities.Roadmap{
		RoadmapID: 7,
		Goal:      "Learn Go",
		CreatedAt: created,
		Tasks: []entities.Task{
			{Title: "Vars", Description: "Basics", DueDate: day0},
			{Title: "Goroutines", Description: "Concurrency", DueDate: day0.AddDate(0, 0, 2), Completed: true},
		},
	}

	f, err := BuildWorkbook(m)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Schedule")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Day", "Due date", "Task", "Description", "Done"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2025-03-10", rows[1][1])
	assert.Equal(t, "Vars", rows[1][2])
	assert.Equal(t, "3", rows[2][0])
	assert.Equal(t, "2025-03-12", rows[2][1])
	assert.Equal(t, "yes", rows[2][4])
}

func TestBuildWorkbookDayUnaffectedByCreatedAtClock(t *testing.T) {
	day0 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	m := &entities.Roadmap{
		RoadmapID: 8,
		Goal:      "Learn Go",
		// generation straddled midnight: the row was written the next day
		CreatedAt: day0.AddDate(0, 0, 1).Add(5 * time.Minute),
		Tasks: []entities.Task{
			{Title: "Vars", DueDate: day0},
			{Title: "Goroutines", DueDate: day0.AddDate(0, 0, 2)},
		},
	}

	f, err := BuildWorkbook(m)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Schedule")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "3", rows[2][0])
}
