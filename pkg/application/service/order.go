package service

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"burger/pkg/domain/model"
	"burger/pkg/domain/service"
)

type RunState int

const (
	Start RunState = iota
	CollectingInput
	Aborted
	Assembled
	Persisting
	Done
	Failed
)

func (s RunState) String() string {
	switch s {
	case Start:
		return "start"
	case CollectingInput:
		return "collecting input"
	case Aborted:
		return "aborted"
	case Assembled:
		return "assembled"
	case Persisting:
		return "persisting"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

const abortedMessage = "Too many invalid attempts. Aborting."

// RunResult describes how a run ended. Order and Count are set once the
// order is assembled; Err holds the error that ended or degraded the run.
type RunResult struct {
	State   RunState
	History []RunState
	Order   *model.Order
	Count   int
	Saved   bool
	Err     error
}

func (r *RunResult) enter(state RunState) {
	r.State = state
	r.History = append(r.History, state)
}

type OrderProcess interface {
	Run() RunResult
}

func NewOrderProcess(repo model.OrderRepository, orders service.OrderService, out io.Writer, logger log.FieldLogger) OrderProcess {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &orderProcess{repo: repo, orders: orders, out: out, logger: logger}
}

type orderProcess struct {
	repo   model.OrderRepository
	orders service.OrderService
	out    io.Writer
	logger log.FieldLogger
}

func (p *orderProcess) Run() RunResult {
	var result RunResult
	result.enter(Start)
	fmt.Fprintln(p.out, "Welcome to the secure burger maker!")
	count := p.repo.LoadCount()
	p.logger.WithField("count", count).Debug("Loaded order count")

	result.enter(CollectingInput)
	order, err := p.orders.AssembleOrder()
	if err != nil {
		p.fail(&result, err)
		return result
	}

	result.enter(Assembled)
	count++
	result.Order, result.Count = order, count
	p.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"price":    order.Price.String(),
	}).Info("Order assembled")
	fmt.Fprintf(p.out, "\nYour burger: %s\n", order.Description)
	fmt.Fprintf(p.out, "Total price (tax included): %s €\n", order.Price.Pad(2))

	result.enter(Persisting)
	if err := p.repo.Save(order, count); err != nil {
		p.logger.WithError(err).WithField("order_id", order.ID).Warn("Failed to save order")
		fmt.Fprintf(p.out, "Failed to save burger: %v\n", err)
		result.Err = err
	} else {
		fmt.Fprintf(p.out, "Burger saved to %s\n", p.repo.Location())
		result.Saved = true
	}

	result.enter(Done)
	return result
}

func (p *orderProcess) fail(result *RunResult, err error) {
	result.Err = err
	switch model.KindOf(err) {
	case model.AbortedOrder:
		p.logger.WithError(err).Warn("Order cancelled")
		fmt.Fprintf(p.out, "Order cancelled: %s\n", abortedMessage)
		result.enter(Aborted)
	default:
		p.logger.WithError(err).Error("Order failed")
		fmt.Fprintf(p.out, "An error occurred: %v\n", err)
		result.enter(Failed)
	}
}
