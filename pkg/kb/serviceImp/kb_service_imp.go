package serviceImp

import (
	"math"
	"sort"
	"strings"

	"studymap/entities"
	"studymap/pkg/kb/embedder"
	"studymap/pkg/kb/repository"
)

type Svc struct {
	r   repository.KBRepository
	emb *embedder.Client
}

func New(r repository.KBRepository, e *embedder.Client) *Svc { return &Svc{r: r, emb: e} }

// UpsertResource stores a study resource and its chunked text. Embedding
// failures degrade to keyword-searchable chunks instead of failing ingest.
func (s *Svc) UpsertResource(title, tags, text, sourceURL string) (*entities.Resource, int, error) {
	res := &entities.Resource{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateResource(res); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return res, 0, nil
	}

	var embs [][]float32
	if s.emb.Configured() {
		if v, err := s.emb.Embed(chs); err == nil {
			embs = v
		}
	}

	rows := make([]entities.ResourceChunk, len(chs))
	for i := range chs {
		var embBytes []byte
		if embs != nil && i < len(embs) {
			embBytes = embedder.FloatsToBytes(embs[i])
		}
		rows[i] = entities.ResourceChunk{ResourceID: res.ResourceID, Ord: i, Text: chs[i], Embedding: embBytes}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return res, len(rows), nil
}

// Search ranks chunks by cosine similarity when the query can be embedded,
// otherwise by keyword containment.
func (s *Svc) Search(query string, k int) ([]entities.ResourceChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb.Configured() {
		if vec, err := s.emb.Embed([]string{q}); err == nil && len(vec) > 0 {
			qvec = vec[0]
		}
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		ch entities.ResourceChunk
		sc float64
	}
	list := make([]scored, 0, len(chunks))
	if len(qvec) > 0 {
		for _, ch := range chunks {
			sc := cosine(qvec, embedder.BytesToFloats(ch.Embedding))
			if sc > 0 {
				list = append(list, scored{ch, sc})
			}
		}
	} else {
		for _, ch := range chunks {
			if containsAnyWord(strings.ToLower(ch.Text), strings.ToLower(q)) {
				list = append(list, scored{ch, 1})
			}
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })

	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.ResourceChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func (s *Svc) ResourcesMeta(ids []uint) (map[uint]entities.Resource, error) {
	return s.r.ResourcesByIDs(ids)
}

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	var parts []string
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		parts = append(parts, cur.String())
	}
	return parts
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func containsAnyWord(text, query string) bool {
	for _, w := range strings.Fields(query) {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
