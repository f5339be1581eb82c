package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/storetest"
)

func optionsFixture() *storetest.Fake {
	f := storetest.New()

	f.Add(store.TableTeams,
		store.Row{"id": float64(3), "abbreviation": "KC"},
		store.Row{"id": float64(9), "abbreviation": "MIA"},
		store.Row{"id": float64(1), "abbreviation": "BUF"},
	)

	f.Add(store.TableGames,
		store.Row{"id": float64(1), "season": float64(2023), "week": float64(1)},
		store.Row{"id": float64(2), "season": float64(2023), "week": float64(2)},
		store.Row{"id": float64(3), "season": float64(2024), "week": float64(1)},
		store.Row{"id": float64(4), "season": float64(2024), "week": float64(18)},
	)

	f.Add(store.TablePlayers,
		store.Row{"id": float64(1)},
		store.Row{"id": float64(2)},
	)

	return f
}

func TestFilterOptions(t *testing.T) {
	svc := newService(optionsFixture())

	opts, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{2024, 2023}, opts.Seasons)
	assert.Equal(t, []int{1, 2, 18}, opts.Weeks)
	assert.Equal(t, []string{"BUF", "KC", "MIA"}, opts.Teams)
	assert.Equal(t, []string{"QB", "RB", "WR", "TE"}, opts.Positions)
}

func TestDatasetSummary(t *testing.T) {
	svc := newService(optionsFixture())

	sum, err := svc.DatasetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{2023, 2024}, sum.Seasons)
	assert.Equal(t, 4, sum.Games)
	assert.Equal(t, 2, sum.Players)
	assert.Equal(t, 3, sum.Teams)
}

func TestOptionsBackendError(t *testing.T) {
	f := optionsFixture()
	f.Err = assert.AnError
	svc := newService(f)

	_, err := svc.FilterOptions(context.Background())
	assert.Error(t, err)

	_, err = svc.DatasetSummary(context.Background())
	assert.Error(t, err)
}
