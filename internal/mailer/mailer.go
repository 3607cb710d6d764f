// Package mailer renders the review template and routes sends to the
// configured channel (Mandrill API or plain SMTP).
package mailer

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/wb-go/wbf/zlog"

	"github.com/simonnirfalk/review-mails/pkg/mandrill"
)

const (
	ChannelMandrill = "mandrill"
	ChannelSMTP     = "smtp"
)

// SendRequest identifies one outgoing review mail.
type SendRequest struct {
	ToEmail    string
	ToName     string
	JobID      int64
	IsReminder bool
}

// Config holds the mailer settings.
type Config struct {
	// Enabled is the global kill switch. When false every send reports
	// failure, so jobs end up in error state instead of silently passing
	// and never being retried once the switch flips on.
	Enabled bool

	Channel      string
	FromEmail    string
	FromName     string
	Subject      string
	TemplatePath string

	GoogleURL      string
	PricerunnerURL string
	TrustpilotURL  string
}

type mandrillAPI interface {
	SendMessage(ctx context.Context, msg mandrill.Message) ([]mandrill.SendResult, error)
}

type smtpSender interface {
	Send(to, toName, subject, html string) error
}

// Mailer sends review mails through one of its channels.
type Mailer struct {
	cfg      Config
	mandrill mandrillAPI
	smtp     smtpSender
	template string
}

// New loads the HTML template and returns a ready mailer. Either client may
// be nil as long as the configured channel has one.
func New(cfg Config, mandrillClient mandrillAPI, smtpClient smtpSender) (*Mailer, error) {
	tpl, err := os.ReadFile(cfg.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("read mail template: %w", err)
	}

	return &Mailer{
		cfg:      cfg,
		mandrill: mandrillClient,
		smtp:     smtpClient,
		template: string(tpl),
	}, nil
}

// fromAddrRe matches the "Name <email@domain>" form of a From setting.
var fromAddrRe = regexp.MustCompile(`^\s*([^<]+?)\s*<\s*([^>]+)\s*>\s*$`)

// From returns the effective from address and display name. The address
// setting may itself carry a display name; an explicit FromName wins.
func (m *Mailer) From() (email, name string) {
	raw := m.cfg.FromEmail
	if match := fromAddrRe.FindStringSubmatch(raw); match != nil {
		name = match[1]
		email = strings.TrimSpace(match[2])
	} else {
		email = strings.TrimSpace(raw)
	}
	if m.cfg.FromName != "" {
		name = m.cfg.FromName
	}
	return email, name
}

// SendReview renders and sends one review mail. It returns the provider
// message id when the channel supplies one.
func (m *Mailer) SendReview(ctx context.Context, req SendRequest) (string, error) {
	to := strings.ToLower(strings.TrimSpace(req.ToEmail))
	if to == "" {
		return "", fmt.Errorf("missing recipient address")
	}

	if !m.cfg.Enabled {
		zlog.Logger.Info().Str("to", to).Int64("job_id", req.JobID).
			Msg("mailer disabled, skipping send")
		return "", fmt.Errorf("mailer disabled")
	}

	html := m.render(req.ToName)

	switch m.cfg.Channel {
	case ChannelMandrill:
		return m.sendMandrill(ctx, to, req, html)
	case ChannelSMTP:
		if err := m.smtp.Send(to, req.ToName, m.cfg.Subject, html); err != nil {
			return "", fmt.Errorf("smtp send: %w", err)
		}
		return "", nil
	default:
		return "", fmt.Errorf("unknown mailer channel %q", m.cfg.Channel)
	}
}

func (m *Mailer) sendMandrill(ctx context.Context, to string, req SendRequest, html string) (string, error) {
	fromEmail, fromName := m.From()

	tag := "review-request"
	if req.IsReminder {
		tag = "review-reminder"
	}

	msg := mandrill.Message{
		FromEmail:          fromEmail,
		FromName:           fromName,
		Subject:            m.cfg.Subject,
		To:                 []mandrill.Recipient{{Email: to, Name: req.ToName, Type: "to"}},
		HTML:               html,
		AutoText:           true,
		PreserveRecipients: false,
		Headers:            map[string]string{"X-Review-Mail": "true"},
		Tags:               []string{tag},
		TrackOpens:         true,
		TrackClicks:        true,
		Metadata:           map[string]string{"review_job_id": strconv.FormatInt(req.JobID, 10)},
	}

	results, err := m.mandrill.SendMessage(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("mandrill send: %w", err)
	}
	if len(results) == 0 {
		return "", nil
	}

	r := results[0]
	if !r.Accepted() {
		zlog.Logger.Warn().Str("to", to).Str("status", r.Status).Str("reject", r.RejectReason).
			Msg("mandrill did not accept message")
		return "", fmt.Errorf("mandrill status %q (reject: %s)", r.Status, r.RejectReason)
	}

	return r.ID, nil
}

// render substitutes the recipient name and review links into the template.
// Unconfigured links degrade to "#" exactly like an empty href would.
func (m *Mailer) render(name string) string {
	return strings.NewReplacer(
		"{{NAME}}", name,
		"{{GOOGLE_URL}}", orHash(m.cfg.GoogleURL),
		"{{PRICERUNNER_URL}}", orHash(m.cfg.PricerunnerURL),
		"{{TRUSTPILOT_URL}}", orHash(m.cfg.TrustpilotURL),
	).Replace(m.template)
}

func orHash(s string) string {
	if s == "" {
		return "#"
	}
	return s
}
