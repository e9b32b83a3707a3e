package handler

import (
	"net/http"
	"strconv"

	"github.com/tovald/bossraid/internal/leaderboard"
)

// HandleLiveLeaderboard returns the current encounter standings
func HandleLiveLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.Live(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}

// HandlePreviousLeaderboard returns the snapshot of the last defeated boss
func HandlePreviousLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Previous(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}
		if summary == nil {
			respondJSON(w, http.StatusOK, DataResponse{Message: MsgNoPreviousKill, Data: nil})
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: summary})
	}
}

// HandleAllTimeLeaderboard returns the lifetime-damage board
func HandleAllTimeLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limitStr := GetOptionalQueryParam(r, "limit", "")
		limit := 0
		if limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed <= 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			limit = parsed
		}

		entries, err := svc.AllTime(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}
