package healthcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) DoHealthCheck(ctx context.Context) error { return f(ctx) }

func stubTerminate(t *testing.T) *int {
	calls := 0
	original := terminate
	terminate = func() { calls++ }
	SetLogger(zerolog.Nop())
	t.Cleanup(func() { terminate = original })
	return &calls
}

func TestHealthCheckPasses(t *testing.T) {
	calls := stubTerminate(t)

	healthCheck(context.Background(), checkerFunc(func(context.Context) error { return nil }))
	assert.Zero(t, *calls)
}

func TestHealthCheckFailureTerminates(t *testing.T) {
	calls := stubTerminate(t)

	healthCheck(context.Background(), checkerFunc(func(context.Context) error {
		return errors.New("ledger is unreachable")
	}))
	assert.Equal(t, 1, *calls)
}

func TestStartHealthCheckCronStopsWithContext(t *testing.T) {
	stubTerminate(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := StartHealthCheckCron(ctx, checkerFunc(func(context.Context) error { return nil }), 0)
	require.NoError(t, err)
}
