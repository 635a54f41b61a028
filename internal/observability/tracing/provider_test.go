package tracing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

func TestNewProviderDisabled(t *testing.T) {
	tp, err := NewProvider(nil, Config{ServiceName: "glassworks"}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, tp)
}

func TestSafeAttributesDropsContactDetails(t *testing.T) {
	attrs := SafeAttributes(
		attribute.String("invoice.number", "GTI-00001"),
		attribute.String("customer.phone", "9876543210"),
	)
	require.Len(t, attrs, 1)
	assert.Equal(t, attribute.Key("invoice.number"), attrs[0].Key)
}

func TestSafeErrorUnwraps(t *testing.T) {
	inner := errors.New("boom")
	safe := SafeError(fmt.Errorf("commit: %w", inner))
	assert.EqualError(t, safe, "commit: boom")
	assert.False(t, errors.Is(safe, inner))
	assert.Nil(t, SafeError(nil))
}
