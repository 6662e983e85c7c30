package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"zoo-management/internal/domain/zoos"
)

type zooRepo struct {
	mu    sync.RWMutex
	byID  map[string]*zoos.Zoo
	order []string
}

func NewZooRepo() zoos.Repository {
	return &zooRepo{
		byID: make(map[string]*zoos.Zoo),
	}
}

func (r *zooRepo) Create(ctx context.Context, z *zoos.Zoo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(z.ID()) == "" {
		return errors.New("zoo id required")
	}
	if _, exists := r.byID[z.ID()]; exists {
		return errors.New("zoo already exists")
	}
	r.byID[z.ID()] = z
	r.order = append(r.order, z.ID())
	return nil
}

func (r *zooRepo) GetByID(ctx context.Context, id string) (*zoos.Zoo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	z, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return z, nil
}

func (r *zooRepo) List(ctx context.Context) ([]*zoos.Zoo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*zoos.Zoo, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
