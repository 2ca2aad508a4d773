package board

import (
	"context"
	"log"
	"sync"

	"message-board-api/internal/cache"
	"message-board-api/internal/models"
	"message-board-api/internal/store"
)

// StorageKey is the fixed key under which the message sequence is persisted.
const StorageKey = "cached_messages"

// Board holds the in-memory message cache and its persistence machinery.
// It is the single state container for the message screen: construct it in
// main, pass it by reference to the handlers.
//
// Writes to the store go through one writer goroutine, so the persisted
// last-write-wins order always matches the in-memory last-insert-wins order
// even under rapid consecutive inserts. Queued snapshots are coalesced: only
// the most recent one needs to reach the store.
type Board struct {
	kv store.KV

	mu       sync.Mutex
	messages []models.Message

	pending chan []models.Message
	done    chan struct{}
}

// New creates an empty Board backed by kv and starts its writer goroutine.
func New(kv store.KV) *Board {
	b := &Board{
		kv:      kv,
		pending: make(chan []models.Message, 16),
		done:    make(chan struct{}),
	}
	go b.writeLoop()
	return b
}

// Load populates the board from the store. An absent key, a read failure or
// a malformed stored value all degrade to an empty cache; the latter two are
// logged. Load never fails: the board is usable afterwards in every case.
func (b *Board) Load(ctx context.Context) {
	value, ok, err := b.kv.Get(ctx, StorageKey)
	if err != nil {
		log.Printf("board: reading %q failed, starting empty: %v", StorageKey, err)
		return
	}
	if !ok {
		return
	}

	msgs, err := cache.Decode(value)
	if err != nil {
		log.Printf("board: stored value under %q is malformed, starting empty: %v", StorageKey, err)
		return
	}

	b.mu.Lock()
	b.messages = msgs
	b.mu.Unlock()
}

// Add inserts text as a new message and schedules an asynchronous write-back
// of the full sequence. Empty or whitespace-only text returns
// cache.ErrEmptyText and leaves the board unchanged. A failed write-back is
// logged but never rolls back the in-memory state, so memory and storage can
// diverge until the next successful write.
func (b *Board) Add(text string) (models.Message, error) {
	b.mu.Lock()
	msgs, msg, err := cache.Insert(b.messages, text)
	if err != nil {
		b.mu.Unlock()
		return models.Message{}, err
	}
	b.messages = msgs
	snapshot := append([]models.Message(nil), msgs...)
	// Enqueue while still holding the lock so queue order always matches
	// insertion order under concurrent Adds. The writer goroutine never takes
	// the lock, so the send cannot deadlock; a full buffer only back-pressures.
	b.pending <- snapshot
	b.mu.Unlock()

	return msg, nil
}

// Messages returns a copy of the current sequence, newest first.
func (b *Board) Messages() []models.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Message(nil), b.messages...)
}

// Len returns the current number of cached messages.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.messages)
}

// Close flushes any pending write-back and stops the writer goroutine.
// Add must not be called after Close.
func (b *Board) Close() {
	close(b.pending)
	<-b.done
}

func (b *Board) writeLoop() {
	defer close(b.done)
	for snapshot := range b.pending {
		// Coalesce to the newest queued snapshot; intermediate states are
		// superseded and never need to hit the store.
	drain:
		for {
			select {
			case next, ok := <-b.pending:
				if !ok {
					b.persist(snapshot)
					return
				}
				snapshot = next
			default:
				break drain
			}
		}
		b.persist(snapshot)
	}
}

func (b *Board) persist(msgs []models.Message) {
	value, err := cache.Encode(msgs)
	if err != nil {
		log.Printf("board: encoding %d messages failed, skipping write: %v", len(msgs), err)
		return
	}
	if err := b.kv.Set(context.Background(), StorageKey, value); err != nil {
		log.Printf("board: write-back to %q failed: %v", StorageKey, err)
	}
}
