package service

import (
	"fmt"
	"sync"
	"time"
)

// codeGate is the keyed replacement for the legacy per-session cooldown and
// "code verified" flags: one record per (operation, email) with an expiry.
// Being process-wide, the resend cooldown holds across browsers too.
type codeGate struct {
	mu      sync.Mutex
	entries map[string]time.Time
	nowFunc func() time.Time
}

func newCodeGate() *codeGate {
	return &codeGate{
		entries: make(map[string]time.Time),
		nowFunc: time.Now,
	}
}

var gate = newCodeGate()

const (
	opActivationSend = "activation_send"
	opRecoverySend   = "recovery_send"
	opRecoveryVerify = "recovery_verified"

	// SendCooldown is the minimum gap between two code emails to one address.
	SendCooldown = 60 * time.Second
	// verifyTTL bounds how long a verified reset code stays usable.
	verifyTTL = 10 * time.Minute
)

func gateKey(op, email string) string {
	return fmt.Sprintf("%s:%s", op, email)
}

// Hold records an expiry for (op, email).
func (g *codeGate) Hold(op, email string, ttl time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries[gateKey(op, email)] = g.nowFunc().Add(ttl)
}

// Remaining reports how long (op, email) is still held; zero when free.
func (g *codeGate) Remaining(op, email string) time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	exp, ok := g.entries[gateKey(op, email)]
	if !ok {
		return 0
	}
	if d := exp.Sub(g.nowFunc()); d > 0 {
		return d
	}
	delete(g.entries, gateKey(op, email))
	return 0
}

func (g *codeGate) Clear(op, email string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, gateKey(op, email))
}

// Purge drops expired entries; called from the cleanup scheduler.
func (g *codeGate) Purge() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.nowFunc()
	n := 0
	for k, exp := range g.entries {
		if !exp.After(now) {
			delete(g.entries, k)
			n++
		}
	}
	return n
}

// PurgeExpiredGateEntries is the scheduler entry point.
func PurgeExpiredGateEntries() int {
	return gate.Purge()
}
