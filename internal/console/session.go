package console

// Session gate. Authentication status is derived from a single privileged
// probe (the stats endpoint); the probe never retries on failure, so an
// expected 401 costs exactly one request per page load.

type probeState int

const (
	probeIdle probeState = iota
	probePending
	probeAuthed
	probeAnon
)

type SessionGate struct {
	state       probeState
	rearmQueued bool
}

// ShouldProbe reports whether a probe needs to be issued.
func (g *SessionGate) ShouldProbe() bool { return g.state == probeIdle }

func (g *SessionGate) BeginProbe() { g.state = probePending }

// ResolveProbe records the probe outcome. Any failure, authorization or
// transport, reads as anonymous; the login form is the recovery path either
// way.
func (g *SessionGate) ResolveProbe(err error) {
	if err != nil {
		g.state = probeAnon
		return
	}
	g.state = probeAuthed
}

// Resolved is false only before the first probe settles; the view shows a
// loading screen until then, never the login form or admin content.
func (g *SessionGate) Resolved() bool {
	return g.state == probeAuthed || g.state == probeAnon
}

func (g *SessionGate) Authenticated() bool { return g.state == probeAuthed }

// Rearm discards the cached probe outcome immediately (login success).
func (g *SessionGate) Rearm() { g.state = probeIdle }

// Disarm forces anonymous and queues a probe for the next cycle (logout
// success). The re-arm is deferred one tick so it cannot race the cache purge
// happening in the same update.
func (g *SessionGate) Disarm() {
	g.state = probeAnon
	g.rearmQueued = true
}

// Tick consumes a queued deferred re-arm. Called once per update cycle.
func (g *SessionGate) Tick() {
	if g.rearmQueued {
		g.rearmQueued = false
		g.state = probeIdle
	}
}
