package event

// EventSchemaVersion is the current version of the event schema
const EventSchemaVersion = "1.0"

// DeadLetterFilePermissions is the file mode for the dead-letter log
const DeadLetterFilePermissions = 0644

// Log message formats
const (
	LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %v"
)
