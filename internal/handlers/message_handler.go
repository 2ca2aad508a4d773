package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"message-board-api/internal/board"
	"message-board-api/internal/cache"
	"message-board-api/internal/realtime"

	"github.com/gin-gonic/gin"
)

// MessageHandler serves the cached message endpoints. It carries the board
// state container explicitly instead of reaching for package globals.
type MessageHandler struct {
	Board *board.Board
}

// NewMessageHandler wraps a board for HTTP serving.
func NewMessageHandler(b *board.Board) *MessageHandler {
	return &MessageHandler{Board: b}
}

// PostMessageRequest represents the request payload for posting a message
type PostMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

/*
*
PostMessage handles POST /api/messages
Inserts a message into the recency cache and schedules the write-back.
The evicted tail (anything past the cap) is gone for good.
*/
func (h *MessageHandler) PostMessage(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Message text is required",
		})
		return
	}

	msg, err := h.Board.Add(req.Text)
	if err != nil {
		if errors.Is(err, cache.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Message text must not be empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add message",
		})
		return
	}

	// Broadcast event to the authenticated user's channels
	evt := map[string]any{
		"type":      "message_created",
		"messageId": msg.ID,
		"userId":    userID,
		"version":   1,
	}
	if bytes, err := json.Marshal(evt); err == nil {
		realtime.GetHub().Broadcast(userID, bytes)
	}

	c.JSON(http.StatusCreated, msg)
}

/*
*
GetMessages handles GET /api/messages
Returns the full cached sequence, newest first.
*/
func (h *MessageHandler) GetMessages(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	msgs := h.Board.Messages()

	c.JSON(http.StatusOK, gin.H{
		"messages": msgs,
		"count":    len(msgs),
		"max":      cache.MaxMessages,
	})
}
