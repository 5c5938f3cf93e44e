package tracing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/staking-ops-client/internal/observability/tracing"
)

func TestWrapWithSpanRecordsSpans(t *testing.T) {
	ctx := tracing.AttachTracingIntoContext(context.Background())
	assert.NotEmpty(t, ctx.Value(tracing.TraceIdKey))

	v, err := tracing.WrapWithSpan(ctx, "fetch_account", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = tracing.WrapWithSpan(ctx, "sign", func() (int, error) { return 0, errors.New("boom") })
	assert.EqualError(t, err, "boom")

	info := tracing.TracingInfoFromContext(ctx)
	require.NotNil(t, info)
	require.Len(t, info.SpanDetails, 2)
	assert.Equal(t, "fetch_account", info.SpanDetails[0].Name)
	assert.Equal(t, "sign", info.SpanDetails[1].Name)
}

func TestWrapWithSpanWithoutTracing(t *testing.T) {
	v, err := tracing.WrapWithSpan(context.Background(), "encrypt", func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Nil(t, tracing.TracingInfoFromContext(context.Background()))
}
