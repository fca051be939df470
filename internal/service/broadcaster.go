package service

// Broadcaster pushes events to a connected owner. Implemented by the
// WebSocket hub; nil when no push channel is wired (tests).
type Broadcaster interface {
	BroadcastToUser(userID string, msgType string, payload interface{})
}
