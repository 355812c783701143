package main

import (
	"context"
	"sync"
	"time"
)

// shutdownGrace bounds how long an interrupt waits for generation to unwind.
const shutdownGrace = 5 * time.Second

// generation ties the context a generation runs under to the interrupt
// handler bound with closer. Interrupt cancels the context and holds the
// exit until Finish is called or the grace period runs out, so the
// heightfield workers see the cancellation and the cache is closed before
// the process goes away.
type generation struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	grace  time.Duration
}

func newGeneration(parent context.Context, grace time.Duration) *generation {
	ctx, cancel := context.WithCancel(parent)
	return &generation{ctx: ctx, cancel: cancel, done: make(chan struct{}), grace: grace}
}

// Finish marks the generation as returned. It is safe to call more than once.
func (g *generation) Finish() {
	g.once.Do(func() { close(g.done) })
}

// Interrupt cancels the generation and reports whether it returned within
// the grace period.
func (g *generation) Interrupt() bool {
	g.cancel()
	select {
	case <-g.done:
		return true
	case <-time.After(g.grace):
		return false
	}
}
