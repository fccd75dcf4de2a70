package email

import (
	"github.com/wb-go/wbf/zlog"
	"gopkg.in/mail.v2"
)

// Client sends notification emails over SMTP. With simulate set, delivery
// is logged and reported successful without touching the SMTP server,
// which is how non-production environments run.
type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	simulate bool
}

func NewClient(smtpHost string, smtpPort int, username, password, from string, simulate bool) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		simulate: simulate,
	}
}

func (c *Client) Send(to, subject, msg string) error {
	if c.simulate {
		zlog.Logger.Info().Str("to", to).Str("subject", subject).Msg("[SIMULATION] email sent")
		return nil
	}

	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", msg)

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(message)
}
