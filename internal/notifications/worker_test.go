package notifications

import (
	"encoding/json"
	"errors"
	"testing"

	"matchly_backend/internal/email"
	"matchly_backend/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Init("test")
}

type fakeSender struct {
	sent []*email.Email
	err  error
}

func (s *fakeSender) Send(msg *email.Email) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *fakeSender) Close() error { return nil }

func TestMailWorker_HandleSendsMatchEmail(t *testing.T) {
	sender := &fakeSender{}
	worker := NewMailWorker(nil, sender, "match_email_queue")

	body, err := json.Marshal(MatchEvent{
		ToEmail:   "anna@example.com",
		MatchName: "Boris",
	})
	require.NoError(t, err)

	worker.handle(body)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, []string{"anna@example.com"}, msg.To)
	assert.Equal(t, "You have a match!", msg.Subject)
	assert.Contains(t, msg.Body, "Boris")
	assert.Contains(t, msg.Body, "anna@example.com")
}

func TestMailWorker_HandleIgnoresMalformedEvent(t *testing.T) {
	sender := &fakeSender{}
	worker := NewMailWorker(nil, sender, "match_email_queue")

	worker.handle([]byte("{not json"))

	assert.Empty(t, sender.sent)
}

func TestMailWorker_HandleSwallowsSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	worker := NewMailWorker(nil, sender, "match_email_queue")

	body, err := json.Marshal(MatchEvent{ToEmail: "anna@example.com", MatchName: "Boris"})
	require.NoError(t, err)

	// Сбой доставки не должен паниковать и не должен всплывать
	assert.NotPanics(t, func() { worker.handle(body) })
}
