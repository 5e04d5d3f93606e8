package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"ojtsystem_backend/internals/configs"
)

const sendTimeout = 20 * time.Second

type sendgridService struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewSendgridService() Service {
	return &sendgridService{
		client: sendgrid.NewSendClient(configs.SendgridAPIKey),
		from:   sgmail.NewEmail(configs.MailFromName, configs.MailFromAddress),
	}
}

func (s *sendgridService) Send(ctx context.Context, msg *Message) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.Subject = msg.Subject

	p := sgmail.NewPersonalization()
	p.AddTos(sgmail.NewEmail(msg.ToName, msg.ToAddress))
	m.AddPersonalizations(p)

	m.AddContent(sgmail.NewContent("text/plain", msg.TextBody))
	if msg.HTMLBody != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTMLBody))
	}
	if len(msg.InlineLogo) > 0 {
		att := sgmail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(msg.InlineLogo))
		att.SetType("image/png")
		att.SetFilename("icslis-logo.png")
		att.SetDisposition("inline")
		att.SetContentID("icslis-logo")
		m.AddAttachment(att)
	}

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
