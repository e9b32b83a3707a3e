package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Raid operation error messages
	ErrMsgTapFailed      = "Failed to apply tap batch"
	ErrMsgActivityFailed = "Failed to record activity"
	ErrMsgJoinFailed     = "Failed to join raid"
	ErrMsgLeaveFailed    = "Failed to leave raid"
	ErrMsgGetBossFailed  = "Failed to get boss state"

	// Leaderboard error messages
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgInvalidLimit         = "Invalid limit parameter"

	// Reward error messages
	ErrMsgClaimRewardFailed = "Failed to claim reward"
	ErrMsgGetRewardsFailed  = "Failed to retrieve pending rewards"
	ErrMsgInvalidRewardID   = "Invalid reward ID"
)

// Success messages for API responses
const (
	MsgJoinedRaidSuccess = "Joined the raid"
	MsgLeftRaidSuccess   = "Left the raid"
	MsgRewardClaimed     = "Reward claimed!"
	MsgNoPreviousKill    = "No boss has been defeated yet"
)
