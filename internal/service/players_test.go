package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestSeasonListNilSeason(t *testing.T) {
	svc := newService(newFixture())

	rows, err := svc.SeasonList(context.Background(), SeasonListParams{Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSeasonListRanksByPositionKey(t *testing.T) {
	svc := newService(newFixture())

	rows, err := svc.SeasonList(context.Background(), SeasonListParams{Season: intPtr(2024), Limit: 100})
	require.NoError(t, err)

	// Player 6 has no usage, player 999 has no dimension record; both drop.
	require.Len(t, rows, 4)

	// Achane ranks first on 1100 rushing yards, Rice second on 900
	// receiving yards, Mahomes third on 300 rushing yards, Kelce last.
	assert.Equal(t, "De'Von Achane", rows[0].PlayerName)
	assert.Equal(t, "Rashee Rice", rows[1].PlayerName)
	assert.Equal(t, "Patrick Mahomes", rows[2].PlayerName)
	assert.Equal(t, "Travis Kelce", rows[3].PlayerName)
}

func TestSeasonListDerivedAverages(t *testing.T) {
	svc := newService(newFixture())

	rows, err := svc.SeasonList(context.Background(), SeasonListParams{Season: intPtr(2024), Position: "WR", Limit: 100})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "1", r.PlayerID)
	assert.InDelta(t, 15.0, r.AvgYardsPerCatch, 1e-9)
	assert.Zero(t, r.AvgYardsPerRush)
	require.NotNil(t, r.Team)
	assert.Equal(t, "KC", *r.Team)
	assert.Nil(t, r.QBRating)
}

func TestSeasonListQBRatings(t *testing.T) {
	svc := newService(newFixture())

	rows, err := svc.SeasonList(context.Background(), SeasonListParams{Season: intPtr(2024), Position: "QB", Limit: 100})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	require.NotNil(t, r.QBRating)
	assert.InDelta(t, 98.6, *r.QBRating, 1e-9)
	require.NotNil(t, r.QBR)
	assert.InDelta(t, 71.2, *r.QBR, 1e-9)
}

func TestSeasonListTeamFilter(t *testing.T) {
	svc := newService(newFixture())

	rows, err := svc.SeasonList(context.Background(), SeasonListParams{Season: intPtr(2024), Team: "MIA", Limit: 100})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "De'Von Achane", rows[0].PlayerName)
}

func TestSeasonListUnknownTeamLeavesFilterOff(t *testing.T) {
	svc := newService(newFixture())

	rows, err := svc.SeasonList(context.Background(), SeasonListParams{Season: intPtr(2024), Team: "XXX", Limit: 100})
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestSeasonListLimitClampsToOne(t *testing.T) {
	svc := newService(newFixture())

	rows, err := svc.SeasonList(context.Background(), SeasonListParams{Season: intPtr(2024), Limit: 0})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "De'Von Achane", rows[0].PlayerName)
}

func TestSeasonListEmptySeason(t *testing.T) {
	svc := newService(newFixture())

	rows, err := svc.SeasonList(context.Background(), SeasonListParams{Season: intPtr(1999), Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
