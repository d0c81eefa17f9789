// SPDX-License-Identifier: MIT
package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/internal/telemetry"
)

func TestInit_Enabled(t *testing.T) {
	var buf bytes.Buffer
	tp, shutdown, err := telemetry.Init(&buf, true, "test")
	require.NoError(t, err)

	_, span := tp.Tracer("t").Start(context.Background(), "Network.path")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `"Name":"Network.path"`)
	assert.Contains(t, out, telemetry.ServiceName)
}

func TestInit_Disabled(t *testing.T) {
	var buf bytes.Buffer
	tp, shutdown, err := telemetry.Init(&buf, false, "test")
	require.NoError(t, err)

	_, span := tp.Tracer("t").Start(context.Background(), "ignored")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	require.NoError(t, shutdown(context.Background()))
	assert.Zero(t, buf.Len())
}
