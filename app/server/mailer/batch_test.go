package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSender 记录发送顺序，并对指定收件人返回错误
type stubSender struct {
	sent    []Message
	failFor map[string]error
}

func (s *stubSender) Send(_ context.Context, msg Message) error {
	s.sent = append(s.sent, msg)
	if err, ok := s.failFor[msg.To]; ok {
		return err
	}
	return nil
}

func TestNewsletterBatch(t *testing.T) {
	recipients := []string{"a@example.com", "b@example.com", "c@example.com", "d@example.com"}
	sender := &stubSender{failFor: map[string]error{
		"b@example.com": errors.New("mailbox full"),
		"d@example.com": errors.New("connection reset"),
	}}

	var (
		sent     int
		failed   int
		outcomes []Outcome
	)
	for outcome := range NewsletterBatch(sender, recipients, "Hello", "<p>News</p>") {
		outcomes = append(outcomes, outcome)
		if outcome.Err != nil {
			failed++
		} else {
			sent++
		}
	}

	// 失败不会中断批次：N-|F| 成功，|F| 失败
	assert.Equal(t, 2, sent)
	assert.Equal(t, 2, failed)
	require.Len(t, outcomes, len(recipients))

	// 结果按列表顺序产生
	for i, outcome := range outcomes {
		assert.Equal(t, recipients[i], outcome.Email)
	}
	assert.NoError(t, outcomes[0].Err)
	assert.ErrorContains(t, outcomes[1].Err, "mailbox full")
	assert.NoError(t, outcomes[2].Err)
	assert.ErrorContains(t, outcomes[3].Err, "connection reset")

	// 每个收件人恰好一次发送尝试
	require.Len(t, sender.sent, len(recipients))
	assert.Equal(t, "Hello", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTML, "<p>News</p>")
	assert.Equal(t, "<p>News</p>", sender.sent[0].Text)
}

func TestNewsletterBatchEmpty(t *testing.T) {
	sender := &stubSender{}

	count := 0
	for range NewsletterBatch(sender, nil, "Hello", "News") {
		count++
	}

	assert.Zero(t, count)
	assert.Empty(t, sender.sent, "no send attempt for an empty list")
}

func TestNewsletterBatchStopsWhenConsumerBreaks(t *testing.T) {
	recipients := []string{"a@example.com", "b@example.com", "c@example.com"}
	sender := &stubSender{}

	for outcome := range NewsletterBatch(sender, recipients, "Hello", "News") {
		if outcome.Email == "b@example.com" {
			break
		}
	}

	// 消费方中途停止后不再继续发送
	assert.Len(t, sender.sent, 2)
}
