package usecase

import (
	"context"
	"errors"
	"testing"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoutes(t *testing.T) {
	routes := DefaultRoutes()
	require.Len(t, routes, 2)

	for _, r := range routes {
		def, replaced := NormalizeRoute(r)
		assert.Empty(t, replaced, r.Code)
		assert.Equal(t, 300, def.FirstDepartureMinutes)
		assert.Equal(t, 1340, def.LastDepartureMinutes)
	}
	assert.Equal(t, 20, *routes[0].IntervalMinutes)
	assert.Equal(t, 10, *routes[1].IntervalMinutes)
}

func TestSeedIfEmptyUsesDefaults(t *testing.T) {
	repo := &fakeRouteRepository{}
	seeder := NewRouteSeeder(repo, nil, logger.NewNopLogger())

	n, err := seeder.SeedIfEmpty(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, repo.inserted)
	for _, r := range repo.routes {
		assert.False(t, r.CreatedAt.IsZero())
	}

	// A second run leaves the populated store alone.
	n, err = seeder.SeedIfEmpty(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 2, repo.inserted)
}

func TestSeedIfEmptyCustomSource(t *testing.T) {
	repo := &fakeRouteRepository{}
	source := func(context.Context) ([]*entity.Route, error) {
		return []*entity.Route{{FromCity: "A", ToCity: "B"}}, nil
	}

	n, err := NewRouteSeeder(repo, source, logger.NewNopLogger()).SeedIfEmpty(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSeedIfEmptyEmptySource(t *testing.T) {
	repo := &fakeRouteRepository{}
	source := func(context.Context) ([]*entity.Route, error) { return nil, nil }

	n, err := NewRouteSeeder(repo, source, logger.NewNopLogger()).SeedIfEmpty(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedIfEmptyErrors(t *testing.T) {
	_, err := NewRouteSeeder(&fakeRouteRepository{err: errors.New("down")}, nil, logger.NewNopLogger()).
		SeedIfEmpty(context.Background())
	assert.ErrorContains(t, err, "failed to count routes")

	failing := func(context.Context) ([]*entity.Route, error) { return nil, errors.New("bad file") }
	_, err = NewRouteSeeder(&fakeRouteRepository{}, failing, logger.NewNopLogger()).SeedIfEmpty(context.Background())
	assert.ErrorContains(t, err, "failed to load seed routes")

	_, err = NewRouteSeeder(&fakeRouteRepository{insertErr: errors.New("dup key")}, nil, logger.NewNopLogger()).
		SeedIfEmpty(context.Background())
	assert.ErrorContains(t, err, "failed to insert seed routes")
}
