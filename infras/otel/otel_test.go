package otel_test

import (
	"context"
	"errors"
	"testing"

	"hotel/config"
	"hotel/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutEndpointIsNoop(t *testing.T) {
	tracer := otel.New(&config.Config{})

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.Test")
	require.NotNil(t, ctx)

	assert.NotPanics(t, func() {
		scope.SetAttributes(map[string]any{"id": int64(42), "name": "room", "ok": true, "price": 1.5})
		scope.AddEvent("event")
		scope.TraceIfError(errors.New("boom"))
		scope.TraceError(nil)
		scope.End()
	})

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
