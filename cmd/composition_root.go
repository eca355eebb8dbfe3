package cmd

import (
	"io"
	"log/slog"

	"shop/internal/adapters/out/console"
	"shop/internal/adapters/out/memory/orderrepo"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

type CompositionRoot struct {
	logger    *slog.Logger
	out       io.Writer
	orderRepo ports.OrderRepository
	processor services.PaymentProcessor
}

// NewCompositionRoot wires the in-memory shop. Reports are written to out.
func NewCompositionRoot(_ Config, logger *slog.Logger, out io.Writer) CompositionRoot {
	return CompositionRoot{
		logger:    logger,
		out:       out,
		orderRepo: orderrepo.NewMemoryOrderRepository(),
		processor: services.NewOrderPaymentProcessor(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.orderRepo, c.processor)
}

func (c *CompositionRoot) CreatePayOrdersCommandHandler() commands.PayOrdersCommandHandler {
	return commands.NewPayOrdersCommandHandler(c.CreatePayOrderCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateGetOrderReportQueryHandler() queries.GetOrderReportQueryHandler {
	return queries.NewGetOrderReportQueryHandler(c.orderRepo, c.processor)
}

func (c *CompositionRoot) CreateOrderReporter() *console.OrderReporter {
	return console.NewOrderReporter(c.out, c.logger)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}
