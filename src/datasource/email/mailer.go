// mailer.go
package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/jordan-wright/email"

	"FlightRadarAnalytics/src/config"
)

// SendReport mails the analysis report over SMTP with explicit TLS,
// attaching the report file when it exists. Configured but unreachable
// mail-out is a degraded condition for the caller, never a pipeline
// failure.
func SendReport(cfg *config.Config, body, attachmentPath string) error {
	sc := cfg.SendEmail
	if sc.Server == "" || sc.To == "" {
		return fmt.Errorf("send_email not configured")
	}

	e := email.NewEmail()
	e.From = fmt.Sprintf("Flight Analytics <%s>", sc.Username)
	e.To = []string{sc.To}
	e.Subject = sc.Subject
	e.Text = []byte(body)

	if attachmentPath != "" {
		if _, err := os.Stat(attachmentPath); err == nil {
			if _, err := e.AttachFile(attachmentPath); err != nil {
				return fmt.Errorf("attach report: %w", err)
			}
		}
	}

	smtpAddr := sc.Server
	if !strings.Contains(smtpAddr, ":") {
		smtpAddr += ":465"
	}
	host := strings.Split(smtpAddr, ":")[0]

	if err := e.SendWithTLS(
		smtpAddr,
		smtp.PlainAuth("", sc.Username, sc.Password, host),
		&tls.Config{ServerName: host},
	); err != nil {
		return fmt.Errorf("send report mail: %w", err)
	}
	return nil
}
