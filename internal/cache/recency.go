package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"message-board-api/internal/models"

	"github.com/google/uuid"
)

// MaxMessages is the fixed capacity of the recency cache. Inserting into a
// full cache evicts the oldest entry.
const MaxMessages = 5

// ErrEmptyText is returned when the text to insert is empty or whitespace-only.
var ErrEmptyText = errors.New("message text is empty")

// now is a small indirection to allow test stubbing if needed.
var now = time.Now

// Insert validates text, prepends a fresh Message and truncates the result to
// MaxMessages entries, newest first. The input slice is not modified. On
// validation failure the input sequence is returned unchanged alongside
// ErrEmptyText.
//
// Ordering is authoritative by insertion, not by timestamp: two messages
// created in the same millisecond still come out in insertion order.
func Insert(msgs []models.Message, text string) ([]models.Message, models.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return msgs, models.Message{}, ErrEmptyText
	}

	msg := models.Message{
		ID:        uuid.NewString(),
		Text:      trimmed,
		Timestamp: now().UnixMilli(),
	}

	out := make([]models.Message, 0, len(msgs)+1)
	out = append(out, msg)
	out = append(out, msgs...)
	if len(out) > MaxMessages {
		out = out[:MaxMessages]
	}
	return out, msg, nil
}

// Encode serializes the message sequence to its stored JSON form. A nil
// sequence encodes as an empty array, not JSON null.
func Encode(msgs []models.Message) (string, error) {
	if msgs == nil {
		msgs = []models.Message{}
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		return "", fmt.Errorf("encode cached messages: %w", err)
	}
	return string(data), nil
}

// Decode parses a stored value back into a message sequence. Malformed input
// yields an explicit error; the caller decides the fallback policy.
func Decode(value string) ([]models.Message, error) {
	var msgs []models.Message
	if err := json.Unmarshal([]byte(value), &msgs); err != nil {
		return nil, fmt.Errorf("decode cached messages: %w", err)
	}
	return msgs, nil
}
