package notifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullConfig() Config {
	return Config{
		User:       "scan@example.com",
		Password:   "secret",
		Recipients: []string{"a@example.com", "b@example.com"},
		Host:       "smtp.example.com",
		Port:       587,
	}
}

func TestEnabled(t *testing.T) {
	assert.True(t, NewEmailNotifier(fullConfig()).Enabled())

	noUser := fullConfig()
	noUser.User = ""
	assert.False(t, NewEmailNotifier(noUser).Enabled())

	noPass := fullConfig()
	noPass.Password = ""
	assert.False(t, NewEmailNotifier(noPass).Enabled())

	noTo := fullConfig()
	noTo.Recipients = nil
	assert.False(t, NewEmailNotifier(noTo).Enabled())
}

func TestSend_DisabledIsNoop(t *testing.T) {
	n := NewEmailNotifier(Config{Host: "smtp.example.com", Port: 587})
	assert.NoError(t, n.Send("subject", "<p>body</p>", nil))
}

func TestBuildMessage_Structure(t *testing.T) {
	n := NewEmailNotifier(fullConfig())

	att := filepath.Join(t.TempDir(), "scan.csv")
	require.NoError(t, os.WriteFile(att, []byte("ticker,date\n"), 0o644))

	msg, err := n.buildMessage("Daily scan", "<p>hello</p>", []string{att})
	require.NoError(t, err)

	s := string(msg)
	assert.Contains(t, s, "From: scan@example.com\r\n")
	assert.Contains(t, s, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, s, "Subject: Daily scan\r\n")
	assert.Contains(t, s, "multipart/mixed")
	assert.Contains(t, s, "Content-Type: text/html")
	assert.Contains(t, s, `filename="scan.csv"`)
	// closing boundary marker
	assert.Contains(t, s, "--\r\n")
}

func TestBuildMessage_MissingAttachment(t *testing.T) {
	n := NewEmailNotifier(fullConfig())
	_, err := n.buildMessage("s", "b", []string{filepath.Join(t.TempDir(), "gone.csv")})
	assert.Error(t, err)
}

func TestEncodeBase64Wrapped_LineLength(t *testing.T) {
	enc := encodeBase64Wrapped(make([]byte, 300))
	for _, line := range splitLines(enc) {
		assert.LessOrEqual(t, len(line), 76)
	}
}

func splitLines(s string) []string {
	var out []string
	for len(s) > 0 {
		i := 0
		for i < len(s) && s[i] != '\r' {
			i++
		}
		out = append(out, s[:i])
		if i+2 <= len(s) {
			s = s[i+2:]
		} else {
			s = ""
		}
	}
	return out
}
