package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCodeGateHoldAndExpiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	g := newCodeGate()
	g.nowFunc = func() time.Time { return now }

	assert.Zero(t, g.Remaining(opActivationSend, "a@cca.edu.ph"))

	g.Hold(opActivationSend, "a@cca.edu.ph", SendCooldown)
	assert.Equal(t, SendCooldown, g.Remaining(opActivationSend, "a@cca.edu.ph"))

	// a different op or email is independent
	assert.Zero(t, g.Remaining(opRecoverySend, "a@cca.edu.ph"))
	assert.Zero(t, g.Remaining(opActivationSend, "b@cca.edu.ph"))

	now = now.Add(30 * time.Second)
	assert.Equal(t, 30*time.Second, g.Remaining(opActivationSend, "a@cca.edu.ph"))

	now = now.Add(31 * time.Second)
	assert.Zero(t, g.Remaining(opActivationSend, "a@cca.edu.ph"))
}

func TestCodeGateClear(t *testing.T) {
	g := newCodeGate()
	g.Hold(opRecoveryVerify, "a@cca.edu.ph", verifyTTL)
	g.Clear(opRecoveryVerify, "a@cca.edu.ph")
	assert.Zero(t, g.Remaining(opRecoveryVerify, "a@cca.edu.ph"))
}

func TestCodeGatePurge(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	g := newCodeGate()
	g.nowFunc = func() time.Time { return now }

	g.Hold(opActivationSend, "a@cca.edu.ph", time.Minute)
	g.Hold(opRecoverySend, "b@cca.edu.ph", time.Hour)

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, g.Purge())
	assert.NotZero(t, g.Remaining(opRecoverySend, "b@cca.edu.ph"))
}
