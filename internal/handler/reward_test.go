package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tovald/bossraid/internal/domain"
)

// MockRewardService
type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) Distribute(ctx context.Context, summary *domain.EncounterSummary) []domain.PendingReward {
	args := m.Called(ctx, summary)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.PendingReward)
}

func (m *MockRewardService) Claim(ctx context.Context, playerID string, rewardID uuid.UUID) (*domain.RewardGrants, error) {
	args := m.Called(ctx, playerID, rewardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RewardGrants), args.Error(1)
}

func (m *MockRewardService) GetPending(ctx context.Context, playerID string) ([]domain.PendingReward, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingReward), args.Error(1)
}

func TestHandleClaimReward_Success(t *testing.T) {
	svc := new(MockRewardService)
	rewardID := uuid.New()
	grants := &domain.RewardGrants{RewardID: rewardID, GoldChests: 3, Crystals: 190}
	svc.On("Claim", mock.Anything, "p1", rewardID).Return(grants, nil)

	rec := postJSON(t, HandleClaimReward(svc), ClaimRewardRequest{
		PlayerID: "p1",
		RewardID: rewardID.String(),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ClaimRewardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, MsgRewardClaimed, resp.Message)
	svc.AssertExpectations(t)
}

func TestHandleClaimReward_InvalidUUID(t *testing.T) {
	svc := new(MockRewardService)

	rec := postJSON(t, HandleClaimReward(svc), ClaimRewardRequest{
		PlayerID: "p1",
		RewardID: "not-a-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Claim")
}

func TestHandleClaimReward_AlreadyClaimed(t *testing.T) {
	svc := new(MockRewardService)
	rewardID := uuid.New()
	svc.On("Claim", mock.Anything, "p1", rewardID).Return(nil, domain.ErrRewardAlreadyClaimed)

	rec := postJSON(t, HandleClaimReward(svc), ClaimRewardRequest{
		PlayerID: "p1",
		RewardID: rewardID.String(),
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgAlreadyClaimedError)
}

func TestHandleClaimReward_NotFound(t *testing.T) {
	svc := new(MockRewardService)
	rewardID := uuid.New()
	svc.On("Claim", mock.Anything, "p1", rewardID).Return(nil, domain.ErrRewardNotFound)

	rec := postJSON(t, HandleClaimReward(svc), ClaimRewardRequest{
		PlayerID: "p1",
		RewardID: rewardID.String(),
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetPendingRewards_Success(t *testing.T) {
	svc := new(MockRewardService)
	pending := []domain.PendingReward{{ID: uuid.New(), PlayerID: "p1"}}
	svc.On("GetPending", mock.Anything, "p1").Return(pending, nil)

	req := httptest.NewRequest(http.MethodGet, "/?player_id=p1", nil)
	rec := httptest.NewRecorder()
	HandleGetPendingRewards(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleGetPendingRewards_MissingPlayerID(t *testing.T) {
	svc := new(MockRewardService)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	HandleGetPendingRewards(svc)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetPending")
}
