package testutil

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yungbote/vocab-builder/internal/data/repos/vocab"
	types "github.com/yungbote/vocab-builder/internal/domain/vocab"
)

// MemoryWordRepo is an in-process WordRepo for tests. It enforces the same
// id format and not-found semantics as the Mongo repo.
type MemoryWordRepo struct {
	mu    sync.Mutex
	words map[string]types.Word
	order []string

	// Err, when set, is returned by every call.
	Err error
	// Calls counts GetByID invocations.
	Calls int
}

var _ vocab.WordRepo = (*MemoryWordRepo)(nil)

func NewMemoryWordRepo(seed ...types.Word) *MemoryWordRepo {
	r := &MemoryWordRepo{words: map[string]types.Word{}}
	for _, w := range seed {
		if w.ID == "" {
			w.ID = primitive.NewObjectID().Hex()
		}
		r.words[w.ID] = w
		r.order = append(r.order, w.ID)
	}
	return r
}

func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return types.ErrInvalidWordID
	}
	return nil
}

func (r *MemoryWordRepo) List(ctx context.Context) ([]*types.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*types.Word, 0, len(r.order))
	for _, id := range r.order {
		w := r.words[id]
		out = append(out, &w)
	}
	return out, nil
}

func (r *MemoryWordRepo) Create(ctx context.Context, word *types.Word) (*types.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	w := types.Word{ID: primitive.NewObjectID().Hex(), English: word.English, German: word.German}
	r.words[w.ID] = w
	r.order = append(r.order, w.ID)
	return &w, nil
}

func (r *MemoryWordRepo) GetByID(ctx context.Context, id string) (*types.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.Err != nil {
		return nil, r.Err
	}
	if err := checkID(id); err != nil {
		return nil, err
	}
	w, ok := r.words[id]
	if !ok {
		return nil, types.ErrWordNotFound
	}
	return &w, nil
}

func (r *MemoryWordRepo) Update(ctx context.Context, id string, patch *types.WordPatch) (*types.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if err := checkID(id); err != nil {
		return nil, err
	}
	w, ok := r.words[id]
	if !ok {
		return nil, types.ErrWordNotFound
	}
	patch.Apply(&w)
	r.words[id] = w
	return &w, nil
}

func (r *MemoryWordRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if err := checkID(id); err != nil {
		return err
	}
	if _, ok := r.words[id]; !ok {
		return types.ErrWordNotFound
	}
	delete(r.words, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// MemoryWordCache is a map-backed WordCache with hit/miss counters.
type MemoryWordCache struct {
	mu     sync.Mutex
	words  map[string]types.Word
	Hits   int
	Misses int
	// Err, when set, is returned by every call.
	Err error
}

func NewMemoryWordCache() *MemoryWordCache {
	return &MemoryWordCache{words: map[string]types.Word{}}
}

func (c *MemoryWordCache) Get(ctx context.Context, id string) (*types.Word, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, false, c.Err
	}
	w, ok := c.words[id]
	if !ok {
		c.Misses++
		return nil, false, nil
	}
	c.Hits++
	return &w, true, nil
}

func (c *MemoryWordCache) Set(ctx context.Context, word *types.Word) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	c.words[word.ID] = *word
	return nil
}

func (c *MemoryWordCache) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	delete(c.words, id)
	return nil
}

func (c *MemoryWordCache) Has(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.words[id]
	return ok
}
