// File: handlers/chat.go
package handlers

import (
	"errors"
	"net/http"

	"schedmate/models"
	"schedmate/services/agent"
	"schedmate/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the turn orchestrator over HTTP.
type ChatHandler struct {
	Turns  agent.TurnService
	Logger *zap.Logger
}

func NewChatHandler(turns agent.TurnService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Turns: turns, Logger: logger}
}

// HandleChat accepts {"message": "...", "conversation_id": "..."} and returns
// the orchestrator's reply. An empty or missing message is the only input
// rejected with a structured error.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	h.Logger.Info("incoming user message",
		zap.String("conversationID", conversationID), zap.String("message", req.Message))

	reply, err := h.Turns.HandleTurn(c.Request.Context(), conversationID, req.Message)
	if err != nil {
		if errors.Is(err, agent.ErrEmptyMessage) {
			utils.JSONError(c, http.StatusBadRequest, "Missing or empty 'message'", "")
			return
		}
		// The orchestrator contains oracle failures; anything else is a bug.
		h.Logger.Error("unexpected turn failure", zap.Error(err))
		c.JSON(http.StatusOK, models.ChatReply{
			Reply:          "⚠️ Internal server error. Please try again later.",
			ConversationID: conversationID,
		})
		return
	}

	c.JSON(http.StatusOK, models.ChatReply{Reply: reply, ConversationID: conversationID})
}
