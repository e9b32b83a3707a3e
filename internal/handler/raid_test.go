package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tovald/bossraid/internal/arena"
	"github.com/tovald/bossraid/internal/domain"
)

// MockArenaService
type MockArenaService struct {
	mock.Mock
}

func (m *MockArenaService) ApplyTapBatch(ctx context.Context, playerID string, count int) (*arena.TapResult, error) {
	args := m.Called(ctx, playerID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*arena.TapResult), args.Error(1)
}

func (m *MockArenaService) RecordActivityPing(ctx context.Context, playerID string, actions int) (*arena.ActivityStatus, error) {
	args := m.Called(ctx, playerID, actions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*arena.ActivityStatus), args.Error(1)
}

func (m *MockArenaService) Join(ctx context.Context, playerID, displayName string, stats domain.PlayerStats) error {
	args := m.Called(ctx, playerID, displayName, stats)
	return args.Error(0)
}

func (m *MockArenaService) Leave(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockArenaService) BossStatus(ctx context.Context) (arena.BossStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(arena.BossStatus), args.Error(1)
}

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleTap_Success(t *testing.T) {
	svc := new(MockArenaService)
	svc.On("ApplyTapBatch", mock.Anything, "p1", 25).Return(&arena.TapResult{
		AcceptedTaps:    25,
		AcceptedDamage:  250,
		EnergyRemaining: 475,
	}, nil)

	rec := postJSON(t, HandleTap(svc), TapRequest{PlayerID: "p1", Count: 25})

	assert.Equal(t, http.StatusOK, rec.Code)
	var result arena.TapResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 25, result.AcceptedTaps)
	assert.Equal(t, int64(250), result.AcceptedDamage)
	svc.AssertExpectations(t)
}

func TestHandleTap_ValidationFailure(t *testing.T) {
	svc := new(MockArenaService)

	rec := postJSON(t, HandleTap(svc), TapRequest{PlayerID: "p1", Count: 0})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "ApplyTapBatch")
}

func TestHandleTap_MalformedBody(t *testing.T) {
	svc := new(MockArenaService)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	HandleTap(svc)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgInvalidRequest)
}

func TestHandleTap_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"boss defeated", domain.ErrEncounterNotAlive, http.StatusConflict, ErrMsgBossNotAliveError},
		{"not joined", domain.ErrPlayerNotInArena, http.StatusBadRequest, ErrMsgNotInArenaError},
		{"no energy", domain.ErrInsufficientEnergy, http.StatusBadRequest, ErrMsgNotEnoughEnergyErr},
		{"arena closed", domain.ErrArenaClosed, http.StatusServiceUnavailable, ErrMsgUnavailableError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockArenaService)
			svc.On("ApplyTapBatch", mock.Anything, "p1", 10).Return(nil, tt.err)

			rec := postJSON(t, HandleTap(svc), TapRequest{PlayerID: "p1", Count: 10})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandleTap_InsufficientEnergyReportsBalance(t *testing.T) {
	svc := new(MockArenaService)
	svc.On("ApplyTapBatch", mock.Anything, "p1", 10).Return(
		&arena.TapResult{EnergyRemaining: 3}, domain.ErrInsufficientEnergy)

	rec := postJSON(t, HandleTap(svc), TapRequest{PlayerID: "p1", Count: 10})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body InsufficientEnergyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrMsgNotEnoughEnergyErr, body.Error)
	assert.Equal(t, 3, body.EnergyRemaining)
}

func TestHandleActivity_Success(t *testing.T) {
	svc := new(MockArenaService)
	svc.On("RecordActivityPing", mock.Anything, "p1", 5).Return(&arena.ActivityStatus{
		ActivityTimeMs: 30_000,
		Actions:        12,
	}, nil)

	rec := postJSON(t, HandleActivity(svc), ActivityRequest{PlayerID: "p1", Actions: 5})

	assert.Equal(t, http.StatusOK, rec.Code)
	var status arena.ActivityStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, int64(30_000), status.ActivityTimeMs)
}

func TestHandleJoin_Success(t *testing.T) {
	svc := new(MockArenaService)
	stats := domain.PlayerStats{Power: 10, Strength: 3, Luck: 2}
	svc.On("Join", mock.Anything, "p1", "Keru", stats).Return(nil)

	rec := postJSON(t, HandleJoin(svc), JoinRequest{
		PlayerID:    "p1",
		DisplayName: "Keru",
		Power:       10,
		Strength:    3,
		Luck:        2,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgJoinedRaidSuccess)
	svc.AssertExpectations(t)
}

func TestHandleJoin_MissingDisplayName(t *testing.T) {
	svc := new(MockArenaService)

	rec := postJSON(t, HandleJoin(svc), JoinRequest{PlayerID: "p1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Join")
}

func TestHandleLeave_NotInArena(t *testing.T) {
	svc := new(MockArenaService)
	svc.On("Leave", mock.Anything, "ghost").Return(domain.ErrPlayerNotInArena)

	rec := postJSON(t, HandleLeave(svc), LeaveRequest{PlayerID: "ghost"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgNotInArenaError)
}

func TestHandleGetBoss(t *testing.T) {
	svc := new(MockArenaService)
	svc.On("BossStatus", mock.Anything).Return(arena.BossStatus{
		BossID:      "grove-tyrant",
		BossName:    "Grove Tyrant",
		HP:          700,
		MaxHP:       1000,
		RagePhase:   1,
		State:       domain.EncounterAlive,
		OnlineCount: 3,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	HandleGetBoss(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var status arena.BossStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "grove-tyrant", status.BossID)
	assert.Equal(t, int64(700), status.HP)
	assert.Nil(t, status.RespawnAt)
}
