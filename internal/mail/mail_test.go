package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"cinesport/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestSMTPMailer_SendTemporaryPassword(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		m := NewSMTP(config.SMTPConfig{From: "no-reply@cinesport.local"})
		err := m.SendTemporaryPassword(context.Background(), "ana@example.com", "Ana", "Abc12345")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("sends html body", func(t *testing.T) {
		fd := &fakeDialer{}
		m := &SMTPMailer{from: "no-reply@cinesport.local", dialer: fd}

		require.NoError(t, m.SendTemporaryPassword(context.Background(), "ana@example.com", "Ana <A>", "Abc12345"))
		require.Len(t, fd.sent, 1)
		assert.Equal(t, []string{"ana@example.com"}, fd.sent[0].GetHeader("To"))

		var buf bytes.Buffer
		_, err := fd.sent[0].WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Abc12345")
		assert.Contains(t, buf.String(), "Ana &lt;A&gt;")
	})

	t.Run("dial failure", func(t *testing.T) {
		m := &SMTPMailer{from: "x@y", dialer: &fakeDialer{err: errors.New("refused")}}
		err := m.SendTemporaryPassword(context.Background(), "a@b", "A", "pw")
		assert.EqualError(t, err, "send mail: refused")
	})
}
