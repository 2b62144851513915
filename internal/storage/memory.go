// internal/storage/memory.go
package storage

import (
	"bytes"
	"context"
	"sync"
)

// MemorySlot keeps the value in process memory. Used by tests and the
// "memory" backend.
type MemorySlot struct {
	mu     sync.Mutex
	data   []byte
	set    bool
	puts   int
	putErr error
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// NewMemorySlotWith starts the slot holding data.
func NewMemorySlotWith(data []byte) *MemorySlot {
	return &MemorySlot{data: bytes.Clone(data), set: true}
}

func (m *MemorySlot) Get(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, ErrSlotEmpty
	}
	return bytes.Clone(m.data), nil
}

func (m *MemorySlot) Put(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.data = bytes.Clone(data)
	m.set = true
	m.puts++
	return nil
}

func (m *MemorySlot) Close() error { return nil }

// FailPuts makes every following Put return err. Pass nil to recover.
func (m *MemorySlot) FailPuts(err error) {
	m.mu.Lock()
	m.putErr = err
	m.mu.Unlock()
}

// Puts reports how many writes succeeded.
func (m *MemorySlot) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}
