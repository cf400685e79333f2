package tui

import "github.com/devjaesung/sowa-admin/internal/console"

// Bubble Tea messages. Every remote call completes by delivering exactly one
// of these back into Update.

type probeDoneMsg struct {
	err error
}

type fetchDoneMsg struct {
	key  console.Key
	gen  uint64
	data any
	err  error
}

type mutationDoneMsg struct {
	op     console.Op
	detail string
	err    error
}

type reorderDoneMsg struct {
	op    console.Op
	batch string
	err   error
}

// rearmProbeMsg fires one cycle after a logout so the probe re-arms strictly
// after the cache purge.
type rearmProbeMsg struct{}
