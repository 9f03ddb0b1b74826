// File: services/agent/interface.go
package agent

import "context"

// TurnService handles one request/reply exchange. No turn retains memory of
// prior turns beyond the stored suggestion list keyed by conversation ID.
type TurnService interface {
	// HandleTurn returns the reply text for one message. The only error it
	// returns is ErrEmptyMessage; every oracle failure degrades to reply text.
	HandleTurn(ctx context.Context, conversationID, message string) (string, error)
}
