package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"message-board-api/internal/auth"
	"message-board-api/internal/board"
	"message-board-api/internal/cache"
	"message-board-api/internal/middleware"
	"message-board-api/internal/models"
	"message-board-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newMessageRouter(t *testing.T, b *board.Board) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewMessageHandler(b)
	r := gin.New()
	r.Use(middleware.JWTAuthMiddleware())
	r.GET("/api/messages", h.GetMessages)
	r.POST("/api/messages", h.PostMessage)

	token, err := auth.GenerateToken("u-1", "alice")
	require.NoError(t, err)
	return r, token
}

func postMessage(t *testing.T, r *gin.Engine, token, text string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"text": text})
	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostMessage_Success(t *testing.T) {
	b := board.New(store.NewMemoryKV())
	defer b.Close()
	r, token := newMessageRouter(t, b)

	w := postMessage(t, r, token, "hello board")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "hello board", created.Text)
	require.NotZero(t, created.Timestamp)

	msgs := b.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, created.ID, msgs[0].ID)
}

func TestPostMessage_RejectsWhitespaceOnly(t *testing.T) {
	b := board.New(store.NewMemoryKV())
	defer b.Close()
	r, token := newMessageRouter(t, b)

	w := postMessage(t, r, token, "   \t ")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, 0, b.Len())
}

func TestPostMessage_RejectsMissingText(t *testing.T) {
	b := board.New(store.NewMemoryKV())
	defer b.Close()
	r, token := newMessageRouter(t, b)

	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, 0, b.Len())
}

func TestGetMessages_NewestFirstCapped(t *testing.T) {
	b := board.New(store.NewMemoryKV())
	defer b.Close()
	r, token := newMessageRouter(t, b)

	for i := 1; i <= 6; i++ {
		w := postMessage(t, r, token, fmt.Sprintf("M%d", i))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Messages []models.Message `json:"messages"`
		Count    int              `json:"count"`
		Max      int              `json:"max"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, cache.MaxMessages, resp.Count)
	require.Equal(t, cache.MaxMessages, resp.Max)
	require.Equal(t, "M6", resp.Messages[0].Text)
	require.Equal(t, "M2", resp.Messages[4].Text)
}

func TestMessages_RequireAuth(t *testing.T) {
	b := board.New(store.NewMemoryKV())
	defer b.Close()
	r, _ := newMessageRouter(t, b)

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
