package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotedesk/backend/internal/domain/quote"
)

func completeWebsite() quote.WebsiteInfo {
	return quote.WebsiteInfo{Name: "Acme", Domain: "acme.co.za"}
}

func completeClient() quote.ClientInfo {
	return quote.ClientInfo{
		BusinessName:   "Acme",
		ContactName:    "Ann",
		ContactSurname: "Lee",
		Email:          "ann@acme.test",
		Phone:          "011 000 0000",
	}
}

func TestNext_StepOneRequiresNameAndDomain(t *testing.T) {
	cases := []struct {
		name    string
		website quote.WebsiteInfo
		missing []string
	}{
		{"both missing", quote.WebsiteInfo{}, []string{"websiteName", "domain"}},
		{"no domain", quote.WebsiteInfo{Name: "Acme"}, []string{"domain"}},
		{"no name", quote.WebsiteInfo{Domain: "acme.test"}, []string{"websiteName"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := New()
			w.Website = tc.website
			err := w.Next()

			var se *StepError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, StepWebsite, se.Step)
			assert.ElementsMatch(t, tc.missing, se.Missing)
			assert.Equal(t, websiteAlert, se.Alert)
			assert.Equal(t, StepWebsite, w.Step)
		})
	}
}

func TestNext_StepTwoRequiresClientFields(t *testing.T) {
	fields := map[string]func(*quote.ClientInfo){
		"businessName":   func(c *quote.ClientInfo) { c.BusinessName = "" },
		"contactName":    func(c *quote.ClientInfo) { c.ContactName = "" },
		"contactSurname": func(c *quote.ClientInfo) { c.ContactSurname = "" },
		"email":          func(c *quote.ClientInfo) { c.Email = "" },
		"phone":          func(c *quote.ClientInfo) { c.Phone = "" },
	}
	for field, clear := range fields {
		t.Run(field, func(t *testing.T) {
			w := &Wizard{Step: StepClient, Website: completeWebsite(), Client: completeClient()}
			clear(&w.Client)

			err := w.Next()
			var se *StepError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, []string{field}, se.Missing)
			assert.Equal(t, clientAlert, se.Alert)
			assert.Equal(t, StepClient, w.Step)
		})
	}
}

func TestNext_OptionalFieldsDoNotBlock(t *testing.T) {
	w := &Wizard{Step: StepClient, Client: completeClient()}
	require.NoError(t, w.Next())
	assert.Equal(t, FirstService, w.Step)
}

func TestNext_ServiceStepsAreFree(t *testing.T) {
	w := &Wizard{Step: FirstService}
	for w.Step < StepInvoice {
		require.NoError(t, w.Next())
	}
	assert.Equal(t, StepInvoice, w.Step)
	assert.False(t, w.CanGoNext())
	assert.ErrorIs(t, w.Next(), ErrLastStep)
	assert.Equal(t, StepInvoice, w.Step)
}

func TestWalkWholeWizard(t *testing.T) {
	w := New()
	w.Website = completeWebsite()
	w.Client = completeClient()
	for i := 1; i < TotalSteps; i++ {
		require.NoError(t, w.Next(), "step %d", w.Step)
	}
	assert.Equal(t, TotalSteps, w.Step)
}

func TestBack_Unconditional(t *testing.T) {
	w := &Wizard{Step: 7}
	w.Back()
	assert.Equal(t, 6, w.Step)

	w = &Wizard{Step: StepClient}
	w.Back()
	assert.Equal(t, StepWebsite, w.Step)
	w.Back()
	assert.Equal(t, StepWebsite, w.Step)
}

func TestIsServiceStep(t *testing.T) {
	assert.False(t, IsServiceStep(2))
	assert.True(t, IsServiceStep(3))
	assert.True(t, IsServiceStep(11))
	assert.False(t, IsServiceStep(12))
}
