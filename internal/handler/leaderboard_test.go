package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tovald/bossraid/internal/domain"
)

// MockLeaderboardService
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) Live(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardService) Previous(ctx context.Context) (*domain.EncounterSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EncounterSummary), args.Error(1)
}

func (m *MockLeaderboardService) AllTime(ctx context.Context, limit int) ([]domain.AllTimeEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AllTimeEntry), args.Error(1)
}

func TestHandleLiveLeaderboard(t *testing.T) {
	svc := new(MockLeaderboardService)
	svc.On("Live", mock.Anything).Return([]domain.LeaderboardEntry{
		{Rank: 1, PlayerID: "p1", Damage: 900, DamagePercent: 90},
		{Rank: 2, PlayerID: "p2", Damage: 100, DamagePercent: 10},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	HandleLiveLeaderboard(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []domain.LeaderboardEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "p1", resp.Data[0].PlayerID)
}

func TestHandlePreviousLeaderboard_NoKillYet(t *testing.T) {
	svc := new(MockLeaderboardService)
	svc.On("Previous", mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	HandlePreviousLeaderboard(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgNoPreviousKill)
}

func TestHandlePreviousLeaderboard_WithSnapshot(t *testing.T) {
	svc := new(MockLeaderboardService)
	svc.On("Previous", mock.Anything).Return(&domain.EncounterSummary{
		BossID:      "grove-tyrant",
		TotalDamage: 1000,
		FinalBlow:   domain.PlayerRef{PlayerID: "p2"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	HandlePreviousLeaderboard(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "grove-tyrant")
}

func TestHandleAllTimeLeaderboard_PassesLimit(t *testing.T) {
	svc := new(MockLeaderboardService)
	svc.On("AllTime", mock.Anything, 25).Return([]domain.AllTimeEntry{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/?limit=25", nil)
	rec := httptest.NewRecorder()
	HandleAllTimeLeaderboard(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleAllTimeLeaderboard_InvalidLimit(t *testing.T) {
	svc := new(MockLeaderboardService)

	for _, limit := range []string{"abc", "-5", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/?limit="+limit, nil)
		rec := httptest.NewRecorder()
		HandleAllTimeLeaderboard(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
	svc.AssertNotCalled(t, "AllTime")
}
