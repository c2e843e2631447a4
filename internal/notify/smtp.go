package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"text/template"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/internal/entity"
)

type SMTPConfig struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string
}

var missingTmpl = template.Must(template.New("missing").Parse(
	`Subject: Clearance documents missing for {{.Set.Name}} ({{.Set.AcademicYear}})
From: {{.From}}
To: {{.To}}

Dear {{.Faculty.Name}},

The following clearance categories still have no approved document on file:
{{range .Missing}}  - {{.}}
{{end}}
Please submit the outstanding documents to complete your clearance.
`))

var statusTmpl = template.Must(template.New("status").Parse(
	`Subject: Clearance document {{.Doc.FileName}} is now {{.Status}}
From: {{.From}}
To: {{.To}}

Dear {{.Faculty.Name}},

Your {{.Doc.ClearanceType}} document "{{.Doc.FileName}}" was evaluated and its
predicted status is now {{.Status}}.
`))

type smtpNotifier struct {
	cfg    SMTPConfig
	logger *slog.Logger

	// swappable in tests
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTP(cfg SMTPConfig, logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &smtpNotifier{cfg: cfg, logger: logger, send: smtp.SendMail}
}

func (n *smtpNotifier) NotifyMissing(ctx context.Context, faculty *entity.Faculty, set *entity.ClearanceSet, missing []constants.ClearanceType) error {
	if len(missing) == 0 {
		return nil
	}
	var body bytes.Buffer
	err := missingTmpl.Execute(&body, map[string]any{
		"From":    n.cfg.From,
		"To":      faculty.Email,
		"Faculty": faculty,
		"Set":     set,
		"Missing": missing,
	})
	if err != nil {
		return fmt.Errorf("render missing digest: %w", err)
	}
	return n.deliver(ctx, faculty.Email, body.Bytes())
}

func (n *smtpNotifier) NotifyStatusChange(ctx context.Context, faculty *entity.Faculty, doc *entity.Document, status constants.Status) error {
	var body bytes.Buffer
	err := statusTmpl.Execute(&body, map[string]any{
		"From":    n.cfg.From,
		"To":      faculty.Email,
		"Faculty": faculty,
		"Doc":     doc,
		"Status":  status,
	})
	if err != nil {
		return fmt.Errorf("render status notice: %w", err)
	}
	return n.deliver(ctx, faculty.Email, body.Bytes())
}

func (n *smtpNotifier) deliver(ctx context.Context, to string, msg []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	if err := n.send(addr, auth, n.cfg.From, []string{to}, msg); err != nil {
		n.logger.Error("failed to send notification", "to", to, "error", err)
		return err
	}
	n.logger.Info("notification sent", "to", to, "bytes", len(msg))
	return nil
}
