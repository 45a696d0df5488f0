package llm

import (
	"context"
	"sync"
)

// MockClient is a scripted Client for tests and dry runs.
// Responses are consumed in order; once exhausted the last one repeats.
type MockClient struct {
	calls     []Request
	responses []MockResponse
	mu        sync.Mutex
}

// MockResponse is one scripted reply. Block, when set, is waited on before
// replying so tests can hold a request in flight.
type MockResponse struct {
	Err   error
	Block <-chan struct{}
	Text  string
}

// NewMockClient creates a mock that answers with the given texts.
func NewMockClient(texts ...string) *MockClient {
	m := &MockClient{}
	for _, text := range texts {
		m.responses = append(m.responses, MockResponse{Text: text})
	}
	return m
}

// Enqueue appends scripted responses.
func (m *MockClient) Enqueue(responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, responses...)
}

// Complete records the request and returns the next scripted response.
func (m *MockClient) Complete(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	idx := len(m.calls) - 1
	var resp MockResponse
	if len(m.responses) > 0 {
		if idx >= len(m.responses) {
			idx = len(m.responses) - 1
		}
		resp = m.responses[idx]
	}
	m.mu.Unlock()

	if resp.Block != nil {
		select {
		case <-resp.Block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Text, nil
}

// Calls returns a copy of the requests received so far.
func (m *MockClient) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}
