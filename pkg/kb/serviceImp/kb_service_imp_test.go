package serviceImp

import (
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studymap/entities"
	"studymap/pkg/kb/embedder"
	"studymap/pkg/kb/repositoryImp"
)

func newKB(t *testing.T) *Svc {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Resource{}, &entities.ResourceChunk{}))
	// no embeddings endpoint configured: keyword fallback path
	return New(repositoryImp.New(db), embedder.New("", "", ""))
}

func TestUpsertResourceChunksText(t *testing.T) {
	svc := newKB(t)
	text := strings.Repeat("goroutines and channels are the heart of Go concurrency\n", 40)
	res, n, err := svc.UpsertResource("Go concurrency notes", "go,concurrency", text, "")
	require.NoError(t, err)
	assert.NotZero(t, res.ResourceID)
	assert.Greater(t, n, 1, "long text should produce multiple chunks")
}

func TestSearchKeywordFallback(t *testing.T) {
	svc := newKB(t)
	_, _, err := svc.UpsertResource("Go notes", "go", "goroutines and channels\n", "")
	require.NoError(t, err)
	_, _, err = svc.UpsertResource("Baking notes", "food", "sourdough starter care\n", "")
	require.NoError(t, err)

	hits, err := svc.Search("goroutines", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Contains(t, hits[0].Text, "goroutines")

	none, err := svc.Search("astrophysics", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newKB(t)
	hits, err := svc.Search("   ", 5)
	require.NoError(t, err)
	assert.Nil(t, hits)
}

func TestChunkTextSkipsBlankRemainder(t *testing.T) {
	parts := chunkText("abc\n", 1000)
	require.Len(t, parts, 1)
	assert.Equal(t, "abc\n", parts[0])
	assert.Empty(t, chunkText("   ", 1000))
}
