package handler

// User-facing error messages. These never carry internal error details.
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	ErrMsgInvalidUsernameError   = "Usernames are 3 to 20 letters, digits or underscores"
	ErrMsgUsernameTakenError     = "That username is already taken"
	ErrMsgPlayerNotFoundError    = "Player not found"
	ErrMsgUnknownCharacterError  = "Unknown character"
	ErrMsgInsufficientFundsError = "Not enough seeds"
	ErrMsgUpgradeLockedError     = "Buy the previous tier first"
	ErrMsgUpgradeOwnedError      = "You already own that upgrade"
	ErrMsgUpgradeNotFoundError   = "Upgrade not found"
)

// Request parsing messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
)

// Log messages
const (
	LogMsgEncodeFailed   = "Failed to encode JSON response"
	LogMsgWriteFailed    = "Failed to write response buffer"
	LogMsgDecodeFailed   = "Failed to decode request"
	LogMsgReadinessCheck = "Readiness check failed"
)

// Operation names used in logs
const (
	OpRegister    = "Register"
	OpView        = "View farm"
	OpCollect     = "Collect"
	OpUpgrades    = "List upgrades"
	OpPurchase    = "Purchase upgrade"
	OpLeaderboard = "Leaderboard"
)

// Route parameters
const (
	ParamUsername  = "username"
	ParamUpgradeID = "upgradeID"
	QueryLimit     = "limit"
)
