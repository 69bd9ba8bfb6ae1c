package domain

import "time"

// Auth audit actions and results.
const (
	AuthActionRegister = "register"
	AuthActionLogin    = "login"

	AuthResultSuccess      = "success"
	AuthResultConflict     = "conflict"
	AuthResultUnauthorized = "unauthorized"
	AuthResultError        = "error"
)

// AuthEvent is one entry in the authentication audit trail. The external API
// collapses all login failures to a single 401; the audit trail keeps the
// distinction for diagnosis.
type AuthEvent struct {
	Action   string    `bson:"action"`
	Username string    `bson:"username"`
	Result   string    `bson:"result"`
	Reason   string    `bson:"reason,omitempty"`
	RemoteIP string    `bson:"remote_ip,omitempty"`
	At       time.Time `bson:"at"`
}
