package catalog

import "github.com/shopspring/decimal"

// Category is one selectable group of services. A quote holds at most one
// option per category.
type Category struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Options     []Option `json:"options"`
}

// Option is a single priced catalog entry.
type Option struct {
	Name        string          `json:"name"`
	OneOffCost  decimal.Decimal `json:"oneOffCost"`
	MonthlyCost decimal.Decimal `json:"monthlyCost"`
	Features    []string        `json:"features"`
}

// Catalog is an immutable, ordered set of categories.
type Catalog struct {
	categories []Category
	index      map[string]int
}

func New(categories []Category) *Catalog {
	c := &Catalog{
		categories: make([]Category, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		c.categories[i] = cloneCategory(cat)
		c.index[cat.ID] = i
	}
	return c
}

// Categories returns a copy of every category in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cloneCategory(cat)
	}
	return out
}

func (c *Catalog) Category(id string) (Category, bool) {
	i, ok := c.index[id]
	if !ok {
		return Category{}, false
	}
	return cloneCategory(c.categories[i]), true
}

// Lookup finds an option by category id and option name.
func (c *Catalog) Lookup(categoryID, optionName string) (Option, bool) {
	i, ok := c.index[categoryID]
	if !ok {
		return Option{}, false
	}
	for _, opt := range c.categories[i].Options {
		if opt.Name == optionName {
			return cloneOption(opt), true
		}
	}
	return Option{}, false
}

// Order returns the position of a category, or -1 when unknown.
func (c *Catalog) Order(categoryID string) int {
	if i, ok := c.index[categoryID]; ok {
		return i
	}
	return -1
}

func (c *Catalog) Len() int { return len(c.categories) }

func cloneCategory(cat Category) Category {
	opts := make([]Option, len(cat.Options))
	for i, o := range cat.Options {
		opts[i] = cloneOption(o)
	}
	cat.Options = opts
	return cat
}

func cloneOption(o Option) Option {
	o.Features = append([]string(nil), o.Features...)
	return o
}
