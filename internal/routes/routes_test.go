package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"message-board-api/internal/board"
	"message-board-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	b := board.New(store.NewMemoryKV())
	defer b.Close()

	r := SetupRoutes(b)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMessagesRouteRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	b := board.New(store.NewMemoryKV())
	defer b.Close()

	r := SetupRoutes(b)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
