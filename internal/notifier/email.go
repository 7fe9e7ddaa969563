package notifier

import (
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
	"time"

	"StockScout/internal/logger"
)

// Config holds SMTP transport settings. The notifier is constructed from
// this explicit object and never reads the environment itself.
type Config struct {
	User       string
	Password   string
	Recipients []string
	Host       string
	Port       int
}

// EmailNotifier sends HTML mail with file attachments over authenticated
// SMTP (STARTTLS).
type EmailNotifier struct {
	cfg Config
}

// NewEmailNotifier creates a notifier. Missing credentials or recipients do
// not fail construction; they just disable sending.
func NewEmailNotifier(cfg Config) *EmailNotifier {
	return &EmailNotifier{cfg: cfg}
}

// Enabled reports whether credentials and at least one recipient are set.
func (n *EmailNotifier) Enabled() bool {
	return n.cfg.User != "" && n.cfg.Password != "" && len(n.cfg.Recipients) > 0
}

// Send delivers an HTML message with the given file attachments. When the
// notifier is not configured it logs and returns nil, so a missing mail
// setup never fails the run.
func (n *EmailNotifier) Send(subject, htmlBody string, attachments []string) error {
	if !n.Enabled() {
		logger.L().Warn().Msg("SMTP credentials missing, skipping email (need user, password and recipients)")
		return nil
	}

	msg, err := n.buildMessage(subject, htmlBody, attachments)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)
	if err := n.sendSTARTTLS(addr, auth, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	logger.L().Info().Strs("to", n.cfg.Recipients).Str("subject", subject).Msg("email sent")
	return nil
}

// SendWithRetry sends with exponential backoff.
func (n *EmailNotifier) SendWithRetry(ctx context.Context, subject, htmlBody string, attachments []string, maxRetries int) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if err := n.Send(subject, htmlBody, attachments); err != nil {
			lastErr = err
			backoff := time.Duration(1<<uint(i)) * time.Second
			logger.L().Warn().Err(err).Int("attempt", i+1).Dur("backoff", backoff).Msg("email send failed, retrying")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}

// buildMessage assembles a multipart/mixed MIME message: one HTML part plus
// one base64 part per attachment. Base64 bodies keep lines within the RFC
// 5322 limit.
func (n *EmailNotifier) buildMessage(subject, htmlBody string, attachments []string) ([]byte, error) {
	boundary, err := generateBoundary()
	if err != nil {
		return nil, err
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", n.cfg.User))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(n.cfg.Recipients, ", ")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary))

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	msg.WriteString(encodeBase64Wrapped([]byte(htmlBody)))
	msg.WriteString("\r\n")

	for _, path := range attachments {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read attachment %s: %w", path, err)
		}
		msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		msg.WriteString("Content-Type: application/octet-stream\r\n")
		msg.WriteString("Content-Transfer-Encoding: base64\r\n")
		msg.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n\r\n", filepath.Base(path)))
		msg.WriteString(encodeBase64Wrapped(data))
		msg.WriteString("\r\n")
	}

	msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return []byte(msg.String()), nil
}

func (n *EmailNotifier) sendSTARTTLS(addr string, auth smtp.Auth, msg []byte) error {
	c, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: n.cfg.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Mail(n.cfg.User); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	for _, rcpt := range n.cfg.Recipients {
		if err := c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt %s: %w", rcpt, err)
		}
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}
	return c.Quit()
}

func generateBoundary() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate boundary: %w", err)
	}
	return fmt.Sprintf("boundary-%x", buf), nil
}

// encodeBase64Wrapped base64-encodes data with lines wrapped at 76 chars.
func encodeBase64Wrapped(data []byte) string {
	enc := base64.StdEncoding.EncodeToString(data)
	var b strings.Builder
	for len(enc) > 76 {
		b.WriteString(enc[:76])
		b.WriteString("\r\n")
		enc = enc[76:]
	}
	b.WriteString(enc)
	return b.String()
}
