package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivationCodeMessage(t *testing.T) {
	msg := ActivationCodeMessage("a@cca.edu.ph", "123456")
	assert.Equal(t, "a@cca.edu.ph", msg.ToAddress)
	assert.Contains(t, msg.Subject, "Activation Code")
	assert.Contains(t, msg.TextBody, "123456")
	assert.Contains(t, msg.HTMLBody, "123456")
	assert.Contains(t, msg.HTMLBody, "cid:icslis-logo")
}

func TestRecoveryCodeMessage(t *testing.T) {
	msg := RecoveryCodeMessage("a@cca.edu.ph", "654321")
	assert.Contains(t, msg.Subject, "Password Reset Code")
	assert.Contains(t, msg.TextBody, "654321")
	assert.Contains(t, msg.HTMLBody, "654321")
}

func TestTempPasswordMessage(t *testing.T) {
	msg := TempPasswordMessage("a@cca.edu.ph", "tmpPass1")
	assert.Contains(t, msg.Subject, "Temporary Password")
	assert.Contains(t, msg.TextBody, "tmpPass1")
	assert.True(t, strings.Contains(msg.TextBody, "change your password"))
}
