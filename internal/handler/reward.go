package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tovald/bossraid/internal/logger"
	"github.com/tovald/bossraid/internal/reward"
)

// ClaimRewardRequest is the body for claiming a pending reward.
type ClaimRewardRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	RewardID string `json:"reward_id" validate:"required,uuid"`
}

// ClaimRewardResponse carries the grants of a successful claim.
type ClaimRewardResponse struct {
	Message string      `json:"message"`
	Grants  interface{} `json:"grants"`
}

// HandleClaimReward marks a pending reward claimed and returns its grants
func HandleClaimReward(svc reward.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimRewardRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim reward"); err != nil {
			return
		}

		rewardID, err := uuid.Parse(req.RewardID)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRewardID)
			return
		}

		grants, err := svc.Claim(r.Context(), req.PlayerID, rewardID)
		if err != nil {
			respondServiceError(w, r, ErrMsgClaimRewardFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Reward claim served",
			"player_id", req.PlayerID,
			"reward_id", rewardID)

		respondJSON(w, http.StatusOK, ClaimRewardResponse{
			Message: MsgRewardClaimed,
			Grants:  grants,
		})
	}
}

// HandleGetPendingRewards lists the player's unclaimed rewards
func HandleGetPendingRewards(svc reward.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		rewards, err := svc.GetPending(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRewardsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: rewards})
	}
}
