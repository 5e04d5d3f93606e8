package mailer

import (
	"bytes"
	"context"
	"fmt"
	htmltmpl "html/template"
	"log"
	"os"

	"ojtsystem_backend/internals/configs"
)

// Message is one outbound notification. HTMLBody is optional; TextBody is
// always present so plain-text clients still get the code.
type Message struct {
	ToAddress  string
	ToName     string
	Subject    string
	TextBody   string
	HTMLBody   string
	InlineLogo []byte // PNG bytes attached with Content-ID "icslis-logo", nil to skip
}

// Service sends a single message, attempt-once with a bounded timeout. A send
// failure must never crash the surrounding request; callers surface a generic
// failure message instead.
type Service interface {
	Send(ctx context.Context, msg *Message) error
}

// New picks the sendgrid backend when an API key is configured, console
// otherwise (local development).
func New() Service {
	if configs.SendgridAPIKey != "" {
		return NewSendgridService()
	}
	return NewConsoleService()
}

// LoadLogo reads the campus logo for inline attachment. Missing file is fine;
// the email just goes out without it.
func LoadLogo() []byte {
	data, err := os.ReadFile(configs.LogoPath)
	if err != nil {
		return nil
	}
	return data
}

var (
	activationTmpl = htmltmpl.Must(htmltmpl.New("activation").Parse(
		`<p>Hello {{.Email}},</p>
<p>Your activation code is: <strong>{{.Code}}</strong></p>
<p><img src="cid:icslis-logo" alt="ICSLIS" width="96"/></p>`))

	recoveryTmpl = htmltmpl.Must(htmltmpl.New("recovery").Parse(
		`<p>Hello {{.Email}},</p>
<p>Your password reset code is: <strong>{{.Code}}</strong></p>
<p><img src="cid:icslis-logo" alt="ICSLIS" width="96"/></p>`))

	tempPasswordTmpl = htmltmpl.Must(htmltmpl.New("temp_password").Parse(
		`<p>Your account is now active.</p>
<p>Temporary password: <strong>{{.Code}}</strong></p>
<p>Please log in and change your password immediately.</p>
<p><img src="cid:icslis-logo" alt="ICSLIS" width="96"/></p>`))
)

func render(t *htmltmpl.Template, email, code string) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, struct{ Email, Code string }{email, code}); err != nil {
		log.Printf("[ERROR] render email template %s: %v", t.Name(), err)
		return ""
	}
	return buf.String()
}

func ActivationCodeMessage(email, code string) *Message {
	return &Message{
		ToAddress:  email,
		Subject:    configs.AppName + " Activation Code",
		TextBody:   fmt.Sprintf("Your activation code is: %s", code),
		HTMLBody:   render(activationTmpl, email, code),
		InlineLogo: LoadLogo(),
	}
}

func RecoveryCodeMessage(email, code string) *Message {
	return &Message{
		ToAddress:  email,
		Subject:    configs.AppName + " Password Reset Code",
		TextBody:   fmt.Sprintf("Your password reset code is: %s", code),
		HTMLBody:   render(recoveryTmpl, email, code),
		InlineLogo: LoadLogo(),
	}
}

func TempPasswordMessage(email, tempPassword string) *Message {
	return &Message{
		ToAddress: email,
		Subject:   configs.AppName + " Temporary Password",
		TextBody: "Your account is now active.\n" +
			fmt.Sprintf("Temporary password: %s\n", tempPassword) +
			"Please log in and change your password immediately.",
		HTMLBody:   render(tempPasswordTmpl, email, tempPassword),
		InlineLogo: LoadLogo(),
	}
}
