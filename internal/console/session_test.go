package console

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionGateProbeOnce(t *testing.T) {
	var g SessionGate
	require.True(t, g.ShouldProbe())
	require.False(t, g.Resolved())

	g.BeginProbe()
	require.False(t, g.ShouldProbe(), "pending probe must not be duplicated")

	g.ResolveProbe(nil)
	require.True(t, g.Resolved())
	require.True(t, g.Authenticated())
	require.False(t, g.ShouldProbe(), "a settled probe never retries")
}

func TestSessionGateAnyErrorReadsAnonymous(t *testing.T) {
	for _, err := range []error{errors.New("401"), errors.New("connection refused")} {
		var g SessionGate
		g.BeginProbe()
		g.ResolveProbe(err)
		require.True(t, g.Resolved())
		require.False(t, g.Authenticated())
		require.False(t, g.ShouldProbe(), "failed probe must not retry")
	}
}

func TestSessionGateDisarmDefersRearm(t *testing.T) {
	var g SessionGate
	g.BeginProbe()
	g.ResolveProbe(nil)

	g.Disarm()
	require.False(t, g.Authenticated())
	require.False(t, g.ShouldProbe(), "re-arm must not fire in the same cycle")

	g.Tick()
	require.True(t, g.ShouldProbe(), "queued re-arm fires on the next cycle")

	g.Tick()
	require.True(t, g.ShouldProbe(), "tick is idempotent once consumed")
}

func TestSessionGateRearmIsImmediate(t *testing.T) {
	var g SessionGate
	g.BeginProbe()
	g.ResolveProbe(errors.New("401"))

	g.Rearm()
	require.True(t, g.ShouldProbe(), "login re-probes without waiting a tick")
}
