package services

import (
	"context"
	"strings"

	"github.com/yungbote/vocab-builder/internal/data/repos/vocab"
	types "github.com/yungbote/vocab-builder/internal/domain"
	"github.com/yungbote/vocab-builder/internal/platform/ctxutil"
	"github.com/yungbote/vocab-builder/internal/platform/logger"
)

type WordService interface {
	List(ctx context.Context) ([]*types.Word, error)
	Create(ctx context.Context, word *types.Word) (*types.Word, error)
	Get(ctx context.Context, id string) (*types.Word, error)
	Update(ctx context.Context, id string, patch *types.WordPatch) (*types.Word, error)
	Delete(ctx context.Context, id string) error
}

// WordCache is an optional read-through cache in front of the word repo.
type WordCache interface {
	Get(ctx context.Context, id string) (*types.Word, bool, error)
	Set(ctx context.Context, word *types.Word) error
	Delete(ctx context.Context, id string) error
}

type wordService struct {
	log      *logger.Logger
	wordRepo vocab.WordRepo
	cache    WordCache
}

// NewWordService wires the service; cache may be nil.
func NewWordService(log *logger.Logger, wordRepo vocab.WordRepo, cache WordCache) WordService {
	return &wordService{
		log:      log.With("service", "WordService"),
		wordRepo: wordRepo,
		cache:    cache,
	}
}

func (s *wordService) List(ctx context.Context) ([]*types.Word, error) {
	words, err := s.wordRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if words == nil {
		words = []*types.Word{}
	}
	return words, nil
}

func (s *wordService) Create(ctx context.Context, word *types.Word) (*types.Word, error) {
	if word == nil {
		word = &types.Word{}
	}
	in := &types.Word{
		English: strings.TrimSpace(word.English),
		German:  strings.TrimSpace(word.German),
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	created, err := s.wordRepo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, created)
	return created, nil
}

func (s *wordService) Get(ctx context.Context, id string) (*types.Word, error) {
	id = strings.TrimSpace(id)
	if s.cache != nil {
		w, found, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn("word cache get failed", append(ctxutil.LogFields(ctx), "word_id", id, "error", err)...)
		} else if found {
			return w, nil
		}
	}
	w, err := s.wordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, w)
	return w, nil
}

func (s *wordService) Update(ctx context.Context, id string, patch *types.WordPatch) (*types.Word, error) {
	id = strings.TrimSpace(id)
	if patch == nil {
		patch = &types.WordPatch{}
	}
	clean := &types.WordPatch{}
	if patch.English != nil {
		v := strings.TrimSpace(*patch.English)
		clean.English = &v
	}
	if patch.German != nil {
		v := strings.TrimSpace(*patch.German)
		clean.German = &v
	}
	if err := clean.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.wordRepo.Update(ctx, id, clean)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, updated)
	return updated, nil
}

func (s *wordService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := s.wordRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, id); err != nil {
			s.log.Warn("word cache delete failed", append(ctxutil.LogFields(ctx), "word_id", id, "error", err)...)
		}
	}
	return nil
}

func (s *wordService) cacheSet(ctx context.Context, w *types.Word) {
	if s.cache == nil || w == nil {
		return
	}
	if err := s.cache.Set(ctx, w); err != nil {
		s.log.Warn("word cache set failed", append(ctxutil.LogFields(ctx), "word_id", w.ID, "error", err)...)
	}
}
