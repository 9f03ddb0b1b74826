package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"schedmate/models"
	"schedmate/services/agent"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoTurns struct{}

func (echoTurns) HandleTurn(_ context.Context, _, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", agent.ErrEmptyMessage
	}
	return "reply to: " + message, nil
}

func newChatRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(echoTurns{}, zap.NewNop())
	r.POST("/api/chat", h.HandleChat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleChatReturnsReply(t *testing.T) {
	r := newChatRouter()

	w := postChat(t, r, models.ChatRequest{Message: "book a meeting", ConversationID: "c1"})

	require.Equal(t, http.StatusOK, w.Code)
	var reply models.ChatReply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, "reply to: book a meeting", reply.Reply)
	assert.Equal(t, "c1", reply.ConversationID)
}

func TestHandleChatMintsConversationID(t *testing.T) {
	r := newChatRouter()

	w := postChat(t, r, models.ChatRequest{Message: "hello"})

	require.Equal(t, http.StatusOK, w.Code)
	var reply models.ChatReply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.NotEmpty(t, reply.ConversationID)
}

func TestHandleChatEmptyMessageRejected(t *testing.T) {
	r := newChatRouter()

	for _, body := range []any{
		models.ChatRequest{Message: "   "},
		map[string]string{},
	} {
		w := postChat(t, r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestHandleChatMalformedBodyRejected(t *testing.T) {
	r := newChatRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
