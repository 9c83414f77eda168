package api

import (
	"context"
	"strings"
	"sync"
)

// MockBackend is a ChatBackend for tests. It replays Chunks, or fails with Err
// after sending them. With WaitForCancel it blocks until ctx is done.
type MockBackend struct {
	Chunks        []string
	Err           error
	WaitForCancel bool

	mu          sync.Mutex
	requests    []*ChatRequest
	closeCalled bool
}

var _ ChatBackend = (*MockBackend)(nil)

func (m *MockBackend) StreamChat(ctx context.Context, req *ChatRequest, onChunk func(string)) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.WaitForCancel {
		<-ctx.Done()
		return "", ctx.Err()
	}

	var sb strings.Builder
	for _, chunk := range m.Chunks {
		sb.WriteString(chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
	}
	if m.Err != nil {
		return sb.String(), m.Err
	}
	return sb.String(), nil
}

func (m *MockBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalled = true
	return nil
}

// Requests returns every request received so far
func (m *MockBackend) Requests() []*ChatRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*ChatRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request, or nil
func (m *MockBackend) LastRequest() *ChatRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

// Closed reports whether Close was called
func (m *MockBackend) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeCalled
}
