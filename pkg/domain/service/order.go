package service

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"burger/pkg/domain/model"
)

type OrderService interface {
	AssembleOrder() (*model.Order, error)
}

func NewOrderService(
	menu *model.Menu,
	repo model.OrderRepository,
	collector ChoiceCollector,
	pricing PriceCalculator,
	now func() time.Time,
) OrderService {
	if now == nil {
		now = time.Now
	}
	return &orderService{menu: menu, repo: repo, collector: collector, pricing: pricing, now: now}
}

type orderService struct {
	menu      *model.Menu
	repo      model.OrderRepository
	collector ChoiceCollector
	pricing   PriceCalculator
	now       func() time.Time
}

func (s *orderService) AssembleOrder() (*model.Order, error) {
	choices := make(map[model.Category]string, len(model.Categories))
	for _, category := range model.Categories {
		set, ok := s.menu.Choice(category)
		if !ok {
			return nil, errors.Errorf("menu has no %s choices", category)
		}
		choice, err := s.collector.Ask(set)
		if err != nil {
			return nil, err
		}
		choices[category] = choice
	}

	orderID, err := s.repo.NextID()
	if err != nil {
		return nil, errors.Wrap(err, "generate order id")
	}

	order := &model.Order{
		ID:        orderID,
		Bun:       choices[model.Bun],
		Meat:      choices[model.Meat],
		Sauce:     choices[model.Sauce],
		Cheese:    choices[model.Cheese],
		Price:     s.pricing.Calculate(pricedIngredients(choices[model.Meat])),
		CreatedAt: s.now(),
	}
	order.Description = describe(order)
	return order, nil
}

// pricedIngredients always uses the generic bun and cheese catalog entries,
// so the chosen bun or cheese variant never changes the price.
func pricedIngredients(meat string) []string {
	return []string{string(model.Bun), meat, string(model.Cheese), "sauce"}
}

func describe(order *model.Order) string {
	return fmt.Sprintf("%s bun + %s + %s + %s cheese", order.Bun, order.Meat, order.Sauce, order.Cheese)
}
