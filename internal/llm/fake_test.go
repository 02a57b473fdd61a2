package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeProviderDefaultResponse(t *testing.T) {
	p := NewFakeProvider("hello")
	got, err := p.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestFakeProviderKeyedResponse(t *testing.T) {
	p := &FakeProvider{Responses: map[string]string{"ping": "pong"}, Default: "fallback"}
	got, err := p.Generate(context.Background(), "ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", got)

	got, err = p.Generate(context.Background(), "other")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
}

func TestFakeProviderPropagatesErr(t *testing.T) {
	p := &FakeProvider{Err: errors.New("boom")}
	_, err := p.Generate(context.Background(), "x")
	assert.Error(t, err)
}

func TestNoThrottleNeverBlocks(t *testing.T) {
	assert.NoError(t, NoThrottle{}.Wait(context.Background()))
}

func TestRateLimiterThrottleAdmitsWithinBurst(t *testing.T) {
	th := NewRateLimiterThrottle(1000, 5)
	for i := 0; i < 5; i++ {
		assert.NoError(t, th.Wait(context.Background()))
	}
}
