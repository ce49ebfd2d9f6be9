package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

// VATRate applies to one-off costs only.
var VATRate = decimal.RequireFromString("0.15")

// VAT returns subTotal * VATRate rounded to cents.
func VAT(subTotal decimal.Decimal) decimal.Decimal {
	return subTotal.Mul(VATRate).Round(2)
}

// Build computes the invoice for the current selection.
func Build(client ClientInfo, website WebsiteInfo, sel *Selection, now time.Time, numbers Numberer) Invoice {
	inv := Invoice{
		Number:       numbers.Next(now),
		CreatedAt:    now,
		ValidUntil:   now.Add(ValidFor),
		Client:       client,
		Website:      website,
		SubTotal:     decimal.Zero,
		MonthlyTotal: decimal.Zero,
	}

	if sel != nil {
		inv.Services = sel.Selected()
	}
	for _, svc := range inv.Services {
		o := svc.Option
		if o.OneOffCost.IsPositive() {
			inv.Items = append(inv.Items, LineItem{
				CategoryID:  svc.CategoryID,
				Description: o.Name,
				Amount:      o.OneOffCost,
			})
			inv.SubTotal = inv.SubTotal.Add(o.OneOffCost)
		}
		if o.MonthlyCost.IsPositive() {
			inv.Items = append(inv.Items, LineItem{
				CategoryID:  svc.CategoryID,
				Description: o.Name + " (Billed Monthly)",
				Amount:      o.MonthlyCost,
				Monthly:     true,
			})
			inv.MonthlyTotal = inv.MonthlyTotal.Add(o.MonthlyCost)
		}
	}

	inv.VATAmount = VAT(inv.SubTotal)
	inv.TotalAmount = inv.SubTotal.Add(inv.VATAmount)
	return inv
}

// FileName is the download name of the rendered quotation.
func FileName(inv Invoice) string {
	return "Quotation-" + inv.Number + ".pdf"
}
