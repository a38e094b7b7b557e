package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderWithoutEndpointIsNoop(t *testing.T) {
	t.Parallel()

	provider, err := NewProvider(context.Background(), Config{ServiceName: "parkctl"})
	require.NoError(t, err)

	_, span := provider.Tracer().Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	observer, err := NewObserver(provider)
	require.NoError(t, err)
	assert.NotNil(t, observer)

	assert.NoError(t, provider.Shutdown(context.Background()))
}
