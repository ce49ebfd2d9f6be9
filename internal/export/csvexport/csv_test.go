package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotedesk/backend/internal/domain/dashboard"
)

func render(t *testing.T, tbl Table) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tbl.Write(&buf))
	return buf.String()
}

func TestWrite_QuotesEveryField(t *testing.T) {
	out := render(t, Table{Header: []string{"A", "B"}, Rows: [][]string{{"x", ""}}})
	assert.Equal(t, "\"A\",\"B\"\n\"x\",\"\"\n", out)
}

func TestWrite_EscapesEmbeddedQuotes(t *testing.T) {
	out := render(t, Table{Header: []string{"Name"}, Rows: [][]string{{`The "Best" Shop, Ltd`}}})
	assert.Equal(t, "\"Name\"\n\"The \"\"Best\"\" Shop, Ltd\"\n", out)

	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `The "Best" Shop, Ltd`, recs[1][0])
}

func TestAgents(t *testing.T) {
	joined := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	out := render(t, Agents([]dashboard.Agent{
		{FirstName: "Ann", LastName: "Lee", Email: "ann@x.test", CommissionRate: 0.05, TotalSales: 1200.5, IsActive: true, CreatedAt: &joined},
	}))
	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"Ann Lee", "ann@x.test", "", "5%", "1200.50", "Active", "2025-01-02"}, recs[1])
}

func TestAgentsCommissionRate(t *testing.T) {
	cases := map[float64]string{
		0.05:  "5%",
		0.07:  "7%",
		0.29:  "29%",
		0.115: "11.5%",
		0:     "0%",
	}
	for rate, want := range cases {
		tbl := Agents([]dashboard.Agent{{FirstName: "Ann", CommissionRate: rate}})
		require.Len(t, tbl.Rows, 1)
		assert.Equal(t, want, tbl.Rows[0][3], "rate %v", rate)
	}
}

func TestColumnSets(t *testing.T) {
	cases := []struct {
		name string
		tbl  Table
		cols int
	}{
		{"clients", Clients([]dashboard.Client{{BusinessName: "Acme", ProductIDs: []string{"1", "2"}}}), 7},
		{"products", Products([]dashboard.Product{{Name: "Hosting", Features: []string{"a", "b"}}}), 6},
		{"payouts", Payouts([]dashboard.CommissionPayout{{AgentName: "Ann", Period: "March 2025", CommissionAmount: 60}}), 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, tc.tbl.Header, tc.cols)
			for _, r := range tc.tbl.Rows {
				assert.Len(t, r, tc.cols)
			}
		})
	}

	assert.Equal(t, "2", Clients([]dashboard.Client{{ProductIDs: []string{"1", "2"}}}).Rows[0][5])
	assert.Equal(t, "a; b", Products([]dashboard.Product{{Features: []string{"a", "b"}}}).Rows[0][4])
	assert.Equal(t, "60.00", Payouts([]dashboard.CommissionPayout{{CommissionAmount: 60}}).Rows[0][3])
}

func TestEmptyListStillHasHeader(t *testing.T) {
	out := render(t, Payouts(nil))
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
