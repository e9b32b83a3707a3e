package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/tovald/bossraid/internal/arena"
	"github.com/tovald/bossraid/internal/domain"
	"github.com/tovald/bossraid/internal/logger"
)

// ArenaService is the slice of the arena the HTTP layer needs.
type ArenaService interface {
	ApplyTapBatch(ctx context.Context, playerID string, count int) (*arena.TapResult, error)
	RecordActivityPing(ctx context.Context, playerID string, actions int) (*arena.ActivityStatus, error)
	Join(ctx context.Context, playerID, displayName string, stats domain.PlayerStats) error
	Leave(ctx context.Context, playerID string) error
	BossStatus(ctx context.Context) (arena.BossStatus, error)
}

// TapRequest is the body for a tap batch.
type TapRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Count    int    `json:"count" validate:"required,gt=0"`
}

// ActivityRequest is the body for an activity ping. Actions counts
// out-of-band skill casts since the last ping.
type ActivityRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Actions  int    `json:"actions" validate:"gte=0"`
}

// JoinRequest is the body for joining the raid.
type JoinRequest struct {
	PlayerID    string `json:"player_id" validate:"required,max=64"`
	DisplayName string `json:"display_name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Power       int    `json:"power" validate:"gte=0"`
	Strength    int    `json:"strength" validate:"gte=0"`
	Luck        int    `json:"luck" validate:"gte=0"`
}

// LeaveRequest is the body for leaving the raid.
type LeaveRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
}

// HandleTap applies a batch of taps against the current boss
func HandleTap(svc ArenaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TapRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Tap batch"); err != nil {
			return
		}

		result, err := svc.ApplyTapBatch(r.Context(), req.PlayerID, req.Count)
		if err != nil {
			// A rejected batch still reports the current balance.
			if errors.Is(err, domain.ErrInsufficientEnergy) && result != nil {
				logger.FromContext(r.Context()).Warn(ErrMsgTapFailed,
					"error", err,
					"player_id", req.PlayerID,
					"energy_remaining", result.EnergyRemaining)
				respondJSON(w, http.StatusBadRequest, InsufficientEnergyResponse{
					Error:           ErrMsgNotEnoughEnergyErr,
					EnergyRemaining: result.EnergyRemaining,
				})
				return
			}
			respondServiceError(w, r, ErrMsgTapFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Tap batch applied",
			"player_id", req.PlayerID,
			"accepted_taps", result.AcceptedTaps,
			"damage", result.AcceptedDamage,
			"boss_killed", result.BossKilled)

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleActivity records an activity ping for eligibility tracking
func HandleActivity(svc ArenaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ActivityRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Activity ping"); err != nil {
			return
		}

		status, err := svc.RecordActivityPing(r.Context(), req.PlayerID, req.Actions)
		if err != nil {
			respondServiceError(w, r, ErrMsgActivityFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, status)
	}
}

// HandleJoin registers a combat session for the player
func HandleJoin(svc ArenaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req JoinRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Join raid"); err != nil {
			return
		}

		stats := domain.PlayerStats{
			Power:    req.Power,
			Strength: req.Strength,
			Luck:     req.Luck,
		}
		if err := svc.Join(r.Context(), req.PlayerID, req.DisplayName, stats); err != nil {
			respondServiceError(w, r, ErrMsgJoinFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Player joined raid",
			"player_id", req.PlayerID,
			"display_name", req.DisplayName)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgJoinedRaidSuccess})
	}
}

// HandleLeave removes the player's combat session
func HandleLeave(svc ArenaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LeaveRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Leave raid"); err != nil {
			return
		}

		if err := svc.Leave(r.Context(), req.PlayerID); err != nil {
			respondServiceError(w, r, ErrMsgLeaveFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Player left raid", "player_id", req.PlayerID)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLeftRaidSuccess})
	}
}

// HandleGetBoss returns the current encounter snapshot
func HandleGetBoss(svc ArenaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := svc.BossStatus(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetBossFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, status)
	}
}
