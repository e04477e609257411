package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPMailer_Send(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 587, "user", "pass", "TradePilot <no-reply@example.com>")

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := m.Send(context.Background(), Message{To: "ann@example.com", Subject: "Your code", Body: "1234"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "no-reply@example.com", gotFrom)
	assert.Contains(t, string(gotMsg), "From: TradePilot <no-reply@example.com>\r\n")
	assert.Equal(t, []string{"ann@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Your code\r\n")
	assert.Contains(t, string(gotMsg), "\r\n\r\n1234")
}

func TestSMTPMailer_BareFromAddress(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 25, "", "", "no-reply@example.com")

	var gotFrom string
	m.send = func(_ string, _ smtp.Auth, from string, _ []string, _ []byte) error {
		gotFrom = from
		return nil
	}

	require.NoError(t, m.Send(context.Background(), Message{To: "ann@example.com"}))
	assert.Equal(t, "no-reply@example.com", gotFrom)
}

func TestSMTPMailer_SendError(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 25, "", "", "no-reply@example.com")
	assert.Nil(t, m.auth)

	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := m.Send(context.Background(), Message{To: "ann@example.com"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestSMTPMailer_CanceledContext(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 25, "", "", "no-reply@example.com")
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send should not be called")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, Message{To: "ann@example.com"}), context.Canceled)
}
