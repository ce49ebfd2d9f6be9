package quote

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotedesk/backend/internal/domain/catalog"
)

type fakeSubmitter struct {
	got   []Payload
	reply SaveResult
	err   error
}

func (f *fakeSubmitter) SaveQuote(_ context.Context, p Payload) (SaveResult, error) {
	f.got = append(f.got, p)
	return f.reply, f.err
}

type memLog struct{ rows []Submission }

func (m *memLog) Record(_ context.Context, s Submission) error {
	m.rows = append(m.rows, s)
	return nil
}

func sampleInvoice() Invoice {
	sel := NewSelection(catalog.Default())
	sel.Select("design", option("Site", 1000, 200))
	return Build(
		ClientInfo{BusinessName: "Acme", ContactName: "Ann", ContactSurname: "Lee", Email: "ann@acme.test", Phone: "011"},
		WebsiteInfo{Name: "Acme", Domain: "acme.test"},
		sel, testNow, fixedNumber("#20250314-1"),
	)
}

func TestNewPayload_Shape(t *testing.T) {
	p := NewPayload(sampleInvoice(), "ann@acme.test")

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, k := range []string{"quoteNumber", "dateCreated", "validUntil", "clientDetails", "websiteDetails",
		"selectedServices", "subTotal", "vatAmount", "totalAmount", "recipientEmail"} {
		assert.Contains(t, m, k)
	}
	assert.Equal(t, 1000.0, m["subTotal"])
	assert.Equal(t, 150.0, m["vatAmount"])
	assert.Equal(t, 1150.0, m["totalAmount"])

	services := m["selectedServices"].([]any)
	require.Len(t, services, 1)
	svc := services[0].(map[string]any)
	assert.Equal(t, "Website Design", svc["category"])
	assert.Equal(t, []any{}, svc["features"])
}

func TestSender_Success(t *testing.T) {
	sub := &fakeSubmitter{reply: SaveResult{Message: "saved", QuoteID: "7"}}
	log := &memLog{}
	s := NewSender(sub, log, nil)

	res, err := s.Send(context.Background(), sampleInvoice(), "")
	require.NoError(t, err)
	assert.Equal(t, "saved", res.Message)

	require.Len(t, sub.got, 1)
	assert.Equal(t, "ann@acme.test", sub.got[0].RecipientEmail)
	require.Len(t, log.rows, 1)
	assert.Equal(t, SubmissionSent, log.rows[0].Status)
	assert.Equal(t, 1150.0, log.rows[0].TotalAmount)
}

func TestSender_FailureIsTerminal(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("mail server down")}
	log := &memLog{}
	s := NewSender(sub, log, nil)

	_, err := s.Send(context.Background(), sampleInvoice(), "other@acme.test")
	require.Error(t, err)
	assert.Equal(t, "mail server down", err.Error())
	assert.Len(t, sub.got, 1, "no retry")
	require.Len(t, log.rows, 1)
	assert.Equal(t, SubmissionFailed, log.rows[0].Status)
	assert.Equal(t, "mail server down", log.rows[0].Error)
	assert.Equal(t, "other@acme.test", log.rows[0].RecipientEmail)
}

func TestSender_NoRecipient(t *testing.T) {
	sub := &fakeSubmitter{}
	s := NewSender(sub, nil, nil)
	inv := sampleInvoice()
	inv.Client.Email = ""

	_, err := s.Send(context.Background(), inv, "")
	assert.ErrorIs(t, err, ErrNoRecipient)
	assert.Empty(t, sub.got)
}
