package usecase

import (
	"context"
	"sort"
	"sync"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/internal/domain/repository"
)

type fakeRouteRepository struct {
	mu        sync.Mutex
	routes    []*entity.Route
	err       error
	insertErr error
	inserted  int
}

func (f *fakeRouteRepository) List(ctx context.Context) ([]*entity.Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := append([]*entity.Route(nil), f.routes...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].FromCity < out[j].FromCity })
	return out, nil
}

func (f *fakeRouteRepository) FindByID(ctx context.Context, id string) (*entity.Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.routes {
		if r.ID == id || (r.Code != "" && r.Code == id) {
			return r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRouteRepository) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.routes)), nil
}

func (f *fakeRouteRepository) InsertMany(ctx context.Context, routes []*entity.Route) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.routes = append(f.routes, routes...)
	f.inserted += len(routes)
	return nil
}

type fakePublisher struct {
	events []*entity.StatusEvent
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, event *entity.StatusEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}
