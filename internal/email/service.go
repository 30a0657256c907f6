package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/docsense/docsense/internal/domain/lead"
	"github.com/docsense/docsense/internal/logger"
)

// leadNotificationTemplate is the internal mail sent to sales when a visitor
// requests a demo. Plain inline HTML, same as the rest of our transactional
// mail.
const leadNotificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
    <title>New demo request</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; font-size: 14px; line-height: 1.6; color: #333;">
    <p>New {{.Source}} request from the website.</p>
    <ul>
        <li><strong>Name:</strong> {{.Name}}</li>
        <li><strong>Email:</strong> {{.Email}}</li>
        <li><strong>Company:</strong> {{.Company}}</li>
        {{if .EmployeeCount}}<li><strong>Employees:</strong> {{.EmployeeCount}}</li>{{end}}
        <li><strong>Language:</strong> {{.Locale}}</li>
    </ul>
    {{if .Message}}<p><strong>Message:</strong><br/>{{.Message}}</p>{{end}}
    {{if .CalculatorSnapshot}}
    <p><strong>Calculator snapshot:</strong><br/>
    {{.CalculatorSnapshot.SubscriptionTier}} tier,
    net yearly savings CHF {{.CalculatorSnapshot.NetYearlySavingsCHF}}</p>
    {{end}}
</body>
</html>`

// Service sends the transactional mail of the marketing site.
type Service struct {
	client *Client
	sales  string
	log    *logger.Logger
}

// NewService creates a new email service
func NewService(client *Client, salesAddress string, log *logger.Logger) *Service {
	return &Service{client: client, sales: salesAddress, log: log}
}

// NotifyNewLead mails the sales inbox about a captured lead. A failed
// notification is logged but never fails lead capture itself.
func (s *Service) NotifyNewLead(ctx context.Context, l *lead.Lead) {
	if !s.client.IsEnabled() {
		s.log.Debugw("email client disabled, skipping lead notification", "lead_id", l.ID)
		return
	}

	tmpl, err := template.New("lead").Parse(leadNotificationTemplate)
	if err != nil {
		s.log.Errorw("failed to parse lead notification template", "error", err)
		return
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, l); err != nil {
		s.log.Errorw("failed to render lead notification", "lead_id", l.ID, "error", err)
		return
	}

	subject := fmt.Sprintf("New %s request: %s (%s)", l.Source, l.Name, l.Company)
	messageID, err := s.client.SendEmail(ctx, s.client.GetFromAddress(), s.sales, subject, body.String(), "")
	if err != nil {
		s.log.Errorw("failed to send lead notification",
			"lead_id", l.ID,
			"error", err,
		)
		return
	}

	s.log.Infow("lead notification sent",
		"lead_id", l.ID,
		"message_id", messageID,
	)
}
