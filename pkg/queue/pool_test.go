package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metrics-lab/staticpress/pkg/config"
)

func TestPool_SiteCancelRegistry(t *testing.T) {
	p := NewWorkerPool("pod-1", nil, config.DefaultQueueConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	p.RegisterSite("site_1", cancel)

	assert.True(t, p.CancelSite("site_1"))
	assert.Error(t, ctx.Err(), "cancel function was invoked")

	p.UnregisterSite("site_1")
	assert.False(t, p.CancelSite("site_1"))
}

func TestPool_CancelUnknownSite(t *testing.T) {
	p := NewWorkerPool("pod-1", nil, config.DefaultQueueConfig(), nil)
	assert.False(t, p.CancelSite("nope"))
}
