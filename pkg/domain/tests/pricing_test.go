package tests

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burger/pkg/domain/model"
	"burger/pkg/domain/service"
)

func TestCalculatePrice(t *testing.T) {
	pricing := service.NewPriceCalculator(model.DefaultMenu())

	cases := []struct {
		name        string
		ingredients []string
		expected    string
	}{
		{"Known ingredients", []string{"bun", "beef", "cheese", "sauce"}, "9.96"},
		{"Unknown ingredient is ignored", []string{"bun", "unknown"}, "2.40"},
		{"Chicken burger", []string{"bun", "chicken", "cheese", "sauce"}, "8.76"},
		{"Vegetables", []string{"tomato", "lettuce"}, "1.20"},
		{"Repeated ingredient counts twice", []string{"bun", "bun"}, "4.80"},
		{"Nothing", nil, "0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, pricing.Calculate(tc.ingredients).String())
		})
	}
}

func TestCalculatePriceRoundsHalfToEven(t *testing.T) {
	menu, err := model.NewMenu(map[string]decimal.Decimal{
		// 0.0125 * 1.2 = 0.015, 0.0375 * 1.2 = 0.045
		"low":  decimal.MustNew(125, 4),
		"high": decimal.MustNew(375, 4),
	}, nil, decimal.MustNew(120, 2))
	require.NoError(t, err)
	pricing := service.NewPriceCalculator(menu)

	assert.Equal(t, "0.02", pricing.Calculate([]string{"low"}).String())
	assert.Equal(t, "0.04", pricing.Calculate([]string{"high"}).String())
}

func TestNewMenuValidation(t *testing.T) {
	t.Run("Fail on negative price", func(t *testing.T) {
		_, err := model.NewMenu(map[string]decimal.Decimal{"bun": decimal.MustNew(-1, 0)}, nil, decimal.MustNew(1, 0))
		assert.Error(t, err)
	})

	t.Run("Fail on empty choice set", func(t *testing.T) {
		_, err := model.NewMenu(nil, []model.ChoiceSet{{Category: model.Bun}}, decimal.MustNew(1, 0))
		assert.Error(t, err)
	})

	t.Run("Fail on untrimmed choice", func(t *testing.T) {
		_, err := model.NewMenu(nil, []model.ChoiceSet{{Category: model.Bun, Allowed: []string{" Sesame"}}}, decimal.MustNew(1, 0))
		assert.Error(t, err)
	})
}

func TestMenuChoiceIsACopy(t *testing.T) {
	menu := model.DefaultMenu()

	set, ok := menu.Choice(model.Bun)
	require.True(t, ok)
	set.Allowed[0] = "brioche"

	again, _ := menu.Choice(model.Bun)
	assert.Equal(t, []string{"classic", "sesame", "wholewheat"}, again.Allowed)
}
