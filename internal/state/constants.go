package state

// Log Messages
const (
	LogMsgCorruptValue = "Stored value unreadable, using default"
)

// Error Messages
const (
	ErrMsgStorePathRequired = "state store path is required"
)
