package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message        string `json:"message"`                   // user's free-text message for this turn
	ConversationID string `json:"conversation_id,omitempty"` // minted server-side when absent
}

// ChatReply is what the chat handler returns to the frontend.
type ChatReply struct {
	Reply          string `json:"reply"`
	ConversationID string `json:"conversation_id"`
}
