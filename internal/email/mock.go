package email

import (
	"context"
	"sync"
)

// MockProvider records messages instead of sending them.
type MockProvider struct {
	mu   sync.Mutex
	Sent []*Email
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(ctx context.Context, email *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Sent = append(p.Sent, email)
	return nil
}

func (p *MockProvider) SendConfirmation(ctx context.Context, to string, token string) error {
	return p.Send(ctx, &Email{
		To:      []string{to},
		Subject: "Confirm your email",
		Body:    token,
	})
}
