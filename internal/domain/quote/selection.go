package quote

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"quotedesk/backend/internal/domain/catalog"
)

// Selection holds at most one chosen option per category.
type Selection struct {
	catalog *catalog.Catalog
	chosen  map[string]catalog.Option
}

func NewSelection(c *catalog.Catalog) *Selection {
	return &Selection{catalog: c, chosen: make(map[string]catalog.Option)}
}

// Select sets the option for a category, replacing any earlier choice.
// A nil option clears the category.
func (s *Selection) Select(categoryID string, opt *catalog.Option) {
	if opt == nil {
		delete(s.chosen, categoryID)
		return
	}
	s.chosen[categoryID] = *opt
}

func (s *Selection) Get(categoryID string) (catalog.Option, bool) {
	o, ok := s.chosen[categoryID]
	return o, ok
}

func (s *Selection) Len() int { return len(s.chosen) }

type Totals struct {
	OneOff  decimal.Decimal
	Monthly decimal.Decimal
}

func (s *Selection) Totals() Totals {
	t := Totals{OneOff: decimal.Zero, Monthly: decimal.Zero}
	for _, o := range s.chosen {
		t.OneOff = t.OneOff.Add(o.OneOffCost)
		t.Monthly = t.Monthly.Add(o.MonthlyCost)
	}
	return t
}

// Selected returns the chosen services in catalog order. Categories the
// catalog does not know sort last, by id.
func (s *Selection) Selected() []SelectedService {
	out := make([]SelectedService, 0, len(s.chosen))
	for id, o := range s.chosen {
		svc := SelectedService{CategoryID: id, CategoryTitle: id, Option: o}
		if s.catalog != nil {
			if cat, ok := s.catalog.Category(id); ok {
				svc.CategoryTitle = cat.Title
			}
		}
		out = append(out, svc)
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := s.order(out[i].CategoryID), s.order(out[j].CategoryID)
		if oi != oj {
			return oi < oj
		}
		return out[i].CategoryID < out[j].CategoryID
	})
	return out
}

func (s *Selection) order(id string) int {
	if s.catalog == nil {
		return 1 << 30
	}
	if i := s.catalog.Order(id); i >= 0 {
		return i
	}
	return 1 << 30
}

// SelectionFromNames builds a selection from category id -> option name.
// Nil or empty names leave the category unselected.
func SelectionFromNames(c *catalog.Catalog, names map[string]*string) (*Selection, error) {
	sel := NewSelection(c)
	for categoryID, name := range names {
		if name == nil || *name == "" {
			continue
		}
		o, ok := c.Lookup(categoryID, *name)
		if !ok {
			return nil, fmt.Errorf("unknown option %q for category %q", *name, categoryID)
		}
		sel.Select(categoryID, &o)
	}
	return sel, nil
}
