package camunda

import (
	"errors"
	"testing"

	"concierge-workers/internal/common/config"
	"concierge-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableZeebeError(t *testing.T) {
	tests := []struct {
		err  string
		want bool
	}{
		{err: "rpc error: code = Unavailable desc = connection refused", want: true},
		{err: "context deadline exceeded", want: true},
		{err: "i/o timeout", want: true},
		{err: "permission denied", want: false},
		{err: "invalid gateway address", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.err, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableZeebeError(errors.New(tt.err)))
		})
	}
}

func TestWorkers_StartDisabled(t *testing.T) {
	w := NewWorkers(nil, logger.NewNoOpLogger())

	started := w.Start("parse-user-intent", config.WorkerConfig{Enabled: false}, func(worker.JobClient, entities.Job) {})

	assert.False(t, started)
	assert.Empty(t, w.Running())
	w.Close()
}
