package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"zoo-management/internal/domain/sitters"
)

type sitterRepo struct {
	mu    sync.RWMutex
	byID  map[string]*sitters.Sitter
	order []string
}

func NewSitterRepo() sitters.Repository {
	return &sitterRepo{
		byID: make(map[string]*sitters.Sitter),
	}
}

func (r *sitterRepo) Create(ctx context.Context, s *sitters.Sitter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID()) == "" {
		return errors.New("sitter id required")
	}
	if _, exists := r.byID[s.ID()]; exists {
		return errors.New("sitter already exists")
	}
	r.byID[s.ID()] = s
	r.order = append(r.order, s.ID())
	return nil
}

func (r *sitterRepo) GetByID(ctx context.Context, id string) (*sitters.Sitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *sitterRepo) List(ctx context.Context) ([]*sitters.Sitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*sitters.Sitter, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
