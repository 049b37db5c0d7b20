package client

const (
	EnvEventTopicStatus = "EVENT_TOPIC_CLIENT_STATUS"

	StatusEventTypeBlocked   = "BLOCKED"
	StatusEventTypeUnblocked = "UNBLOCKED"
	StatusEventTypeDeleted   = "DELETED"
)

// StatusEvent is the generic envelope for client status events
type StatusEvent[E any] struct {
	ClientId uint32 `json:"clientId"`
	Type     string `json:"type"`
	Body     E      `json:"body"`
}

// BlockedStatusEventBody carries an administrative hold
type BlockedStatusEventBody struct {
	Reason string `json:"reason"`
}

// UnblockedStatusEventBody carries a lifted hold
type UnblockedStatusEventBody struct {
}

// DeletedStatusEventBody carries an account deletion
type DeletedStatusEventBody struct {
}
