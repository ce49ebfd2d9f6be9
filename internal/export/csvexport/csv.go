// Package csvexport writes the dashboard list exports. Every field is
// double-quoted; embedded quotes are doubled.
package csvexport

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"quotedesk/backend/internal/domain/dashboard"
)

const (
	AgentsFile   = "agents.csv"
	ClientsFile  = "clients.csv"
	ProductsFile = "products.csv"
	PayoutsFile  = "commission-payouts.csv"
)

// Table is a header plus rows of already formatted cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// Write renders t as comma separated, fully quoted lines.
func (t Table) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := writeRow(bw, t.Header); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := writeRow(bw, r); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, cells []string) error {
	for i, c := range cells {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quote(c)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func money(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

// percent renders a rate such as 0.07 as "7%".
func percent(rate float64) string {
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)).String() + "%"
}

func yesNo(b bool) string {
	if b {
		return "Active"
	}
	return "Inactive"
}

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func Agents(agents []dashboard.Agent) Table {
	t := Table{Header: []string{"Name", "Email", "Phone", "Commission Rate", "Total Sales", "Status", "Joined"}}
	for _, a := range agents {
		t.Rows = append(t.Rows, []string{
			a.FullName(),
			a.Email,
			a.Phone,
			percent(a.CommissionRate),
			money(a.TotalSales),
			yesNo(a.IsActive),
			date(a.CreatedAt),
		})
	}
	return t
}

func Clients(clients []dashboard.Client) Table {
	t := Table{Header: []string{"Business Name", "Contact", "Email", "Phone", "Agent ID", "Products", "Status"}}
	for _, c := range clients {
		contact := strings.TrimSpace(c.ContactName + " " + c.ContactSurname)
		t.Rows = append(t.Rows, []string{
			c.BusinessName,
			contact,
			c.Email,
			c.Phone,
			c.AgentID,
			strconv.Itoa(len(c.ProductIDs)),
			yesNo(c.IsActive),
		})
	}
	return t
}

func Products(products []dashboard.Product) Table {
	t := Table{Header: []string{"Name", "Category", "Price", "Monthly Price", "Features", "Status"}}
	for _, p := range products {
		t.Rows = append(t.Rows, []string{
			p.Name,
			p.Category,
			money(p.Price),
			money(p.MonthlyPrice),
			strings.Join(p.Features, "; "),
			yesNo(p.IsActive),
		})
	}
	return t
}

func Payouts(payouts []dashboard.CommissionPayout) Table {
	t := Table{Header: []string{"Agent", "Period", "Total Sales", "Commission", "Status", "Paid At"}}
	for _, p := range payouts {
		t.Rows = append(t.Rows, []string{
			p.AgentName,
			p.Period,
			money(p.TotalSales),
			money(p.CommissionAmount),
			p.Status,
			date(p.PaidAt),
		})
	}
	return t
}
