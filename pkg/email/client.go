// Package email sends review mails over plain SMTP. It exists as a fallback
// channel for environments without a Mandrill key; the rendered HTML is the
// same either way.
package email

import (
	"gopkg.in/mail.v2"
)

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers a single HTML mail. SMTP gives no provider message id, so
// callers get delivery confirmation only through the absence of an error.
func (c *Client) Send(to, toName, subject, html string) error {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetAddressHeader("To", to, toName)
	message.SetHeader("Subject", subject)

	message.SetBody("text/html", html)

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(message)
}
