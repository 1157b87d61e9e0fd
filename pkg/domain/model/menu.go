package model

import (
	"strings"

	"github.com/govalues/decimal"
	"github.com/pkg/errors"
)

type Category string

const (
	Bun    Category = "bun"
	Meat   Category = "meat"
	Sauce  Category = "sauce"
	Cheese Category = "cheese"
)

// Categories lists the categories in the order they are asked.
var Categories = []Category{Bun, Meat, Sauce, Cheese}

type ChoiceSet struct {
	Category Category
	Prompt   string
	Allowed  []string
}

func (s ChoiceSet) Contains(token string) bool {
	for _, allowed := range s.Allowed {
		if allowed == token {
			return true
		}
	}
	return false
}

func (s ChoiceSet) Options() []string {
	return append([]string(nil), s.Allowed...)
}

// Menu is the immutable catalog of ingredient prices, the allowed choices
// per category and the tax factor applied to every order.
type Menu struct {
	prices  map[string]decimal.Decimal
	choices map[Category]ChoiceSet
	taxRate decimal.Decimal
}

func NewMenu(prices map[string]decimal.Decimal, choices []ChoiceSet, taxRate decimal.Decimal) (*Menu, error) {
	if taxRate.Sign() < 0 {
		return nil, errors.New("tax rate cannot be negative")
	}

	menu := &Menu{
		prices:  make(map[string]decimal.Decimal, len(prices)),
		choices: make(map[Category]ChoiceSet, len(choices)),
		taxRate: taxRate,
	}
	for name, price := range prices {
		if price.Sign() < 0 {
			return nil, errors.Errorf("price of %q cannot be negative", name)
		}
		menu.prices[name] = price
	}
	for _, set := range choices {
		if len(set.Allowed) == 0 {
			return nil, errors.Errorf("no allowed choices for %s", set.Category)
		}
		for _, token := range set.Allowed {
			if token != strings.ToLower(strings.TrimSpace(token)) {
				return nil, errors.Errorf("choice %q for %s must be trimmed lowercase", token, set.Category)
			}
		}
		set.Allowed = set.Options()
		menu.choices[set.Category] = set
	}
	return menu, nil
}

// DefaultMenu returns the burger shop menu.
func DefaultMenu() *Menu {
	prices := map[string]decimal.Decimal{
		"bun":     decimal.MustNew(20, 1),
		"beef":    decimal.MustNew(50, 1),
		"chicken": decimal.MustNew(40, 1),
		"cheese":  decimal.MustNew(10, 1),
		"tomato":  decimal.MustNew(5, 1),
		"lettuce": decimal.MustNew(5, 1),
		"sauce":   decimal.MustNew(3, 1),
	}
	choices := []ChoiceSet{
		{Category: Bun, Prompt: "What kind of bun would you like?", Allowed: []string{"classic", "sesame", "wholewheat"}},
		{Category: Meat, Prompt: "Enter the meat type", Allowed: []string{"beef", "chicken"}},
		{Category: Sauce, Prompt: "What sauce would you like?", Allowed: []string{"ketchup", "mayo", "bbq", "mustard", "sauce"}},
		{Category: Cheese, Prompt: "What kind of cheese?", Allowed: []string{"cheddar", "swiss", "emmental", "cheese"}},
	}

	menu, err := NewMenu(prices, choices, decimal.MustNew(120, 2))
	if err != nil {
		panic(err)
	}
	return menu
}

func (m *Menu) Price(ingredient string) (decimal.Decimal, bool) {
	price, ok := m.prices[ingredient]
	return price, ok
}

func (m *Menu) Choice(category Category) (ChoiceSet, bool) {
	set, ok := m.choices[category]
	if !ok {
		return ChoiceSet{}, false
	}
	set.Allowed = set.Options()
	return set, true
}

func (m *Menu) TaxRate() decimal.Decimal {
	return m.taxRate
}
