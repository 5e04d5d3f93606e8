package mailer

import (
	"context"
	"log"
)

// consoleService logs messages instead of sending, for local development.
type consoleService struct{}

func NewConsoleService() Service {
	return &consoleService{}
}

func (consoleService) Send(_ context.Context, msg *Message) error {
	log.Printf("[MAIL] to=%s subject=%q\n%s", msg.ToAddress, msg.Subject, msg.TextBody)
	return nil
}
