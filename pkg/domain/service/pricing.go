package service

import (
	"github.com/govalues/decimal"

	"burger/pkg/domain/model"
)

const priceScale = 2

type PriceCalculator interface {
	Calculate(ingredients []string) decimal.Decimal
}

func NewPriceCalculator(menu *model.Menu) PriceCalculator {
	return &priceCalculator{menu: menu}
}

type priceCalculator struct {
	menu *model.Menu
}

// Calculate sums the catalog price of every known ingredient, applies the
// tax factor and rounds half to even to cents. Unknown ingredients are free.
func (p *priceCalculator) Calculate(ingredients []string) decimal.Decimal {
	total := decimal.MustNew(0, priceScale)
	for _, ingredient := range ingredients {
		price, ok := p.menu.Price(ingredient)
		if !ok {
			continue
		}
		// Add only fails past 19 significant digits.
		if sum, err := total.Add(price); err == nil {
			total = sum
		}
	}

	taxed, err := total.Mul(p.menu.TaxRate())
	if err != nil {
		taxed = total
	}
	return taxed.Round(priceScale).Pad(priceScale)
}
