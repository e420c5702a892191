package upstream

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTransient(t *testing.T) {
	base := errors.New("boom")

	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(base))
	assert.True(t, IsTransient(Transient(base)))
	assert.True(t, IsTransient(fmt.Errorf("wrapped: %w", Transient(base))))
	assert.True(t, IsTransient(context.DeadlineExceeded))
	assert.False(t, IsTransient(context.Canceled))
}

func TestRetryableStatus(t *testing.T) {
	assert.True(t, RetryableStatus(429))
	assert.True(t, RetryableStatus(500))
	assert.True(t, RetryableStatus(503))
	assert.False(t, RetryableStatus(400))
	assert.False(t, RetryableStatus(404))
	assert.False(t, RetryableStatus(200))
}

func TestTransientNilPassthrough(t *testing.T) {
	assert.Nil(t, Transient(nil))
}
