package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// MemoryBus delivers events synchronously inside the process. It backs
// deployments without NATS and is what the tests run against.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]func(msg *Message)
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[string][]func(msg *Message))}
}

func (b *MemoryBus) Publish(_ context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	b.mu.RLock()
	handlers := b.handlers[subject]
	b.mu.RUnlock()

	msg := &Message{
		Subject:   subject,
		Data:      payload,
		Timestamp: time.Now(),
	}
	for _, handler := range handlers {
		handler(msg)
	}
	return nil
}

func (b *MemoryBus) Subscribe(subject string, handler func(msg *Message)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[subject] = append(b.handlers[subject], handler)
	return nil
}

func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = make(map[string][]func(msg *Message))
	return nil
}
