package postgres

// Error Messages - Aggregate Operations
const (
	ErrMsgFailedToUpsertAggregate   = "failed to upsert player aggregate"
	ErrMsgFailedToQueryLeaderboard  = "failed to query all-time leaderboard"
	ErrMsgFailedToScanLeaderboard   = "failed to scan all-time leaderboard row"
)

// Error Messages - Reward Operations
const (
	ErrMsgFailedToMarshalBundle   = "failed to marshal reward bundle"
	ErrMsgFailedToUnmarshalBundle = "failed to unmarshal reward bundle"
	ErrMsgFailedToInsertReward    = "failed to insert pending reward"
	ErrMsgFailedToBeginClaimTx    = "failed to begin claim transaction"
	ErrMsgFailedToCommitClaimTx   = "failed to commit claim transaction"
	ErrMsgFailedToClaimReward     = "failed to claim reward"
	ErrMsgFailedToQueryRewards    = "failed to query pending rewards"
	ErrMsgFailedToScanReward      = "failed to scan pending reward row"
)
