package cmd

import (
	"context"
	"fmt"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"
)

// RunCheckout places the sample order for Marco, pays it and prints the
// item table and checkout summary through the root's reporter.
func RunCheckout(ctx context.Context, root *CompositionRoot) error {
	logger := root.Logger().With("component", "checkout")

	address, err := kernel.NewAddress("New York", "Broadway", 69)
	if err != nil {
		return fmt.Errorf("address: %w", err)
	}
	me, err := user.NewUser("Marco", "aunglynn@marco.com", address)
	if err != nil {
		return fmt.Errorf("user: %w", err)
	}

	apple, err := order.NewItem("Apple", 5, 1_000)
	if err != nil {
		return fmt.Errorf("item: %w", err)
	}
	cherry, err := order.NewItem("Cherry", 2, 1_500)
	if err != nil {
		return fmt.Errorf("item: %w", err)
	}

	orderID := kernel.NewUUID()
	createCmd, err := commands.NewCreateOrderCommand(orderID, me, []order.Item{apple, cherry})
	if err != nil {
		return err
	}
	if err = root.CreateCreateOrderCommandHandler().Handle(ctx, createCmd); err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	logger.InfoContext(ctx, "order created", "order_id", orderID.String())

	payCmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return err
	}
	if err = root.CreatePayOrderCommandHandler().Handle(ctx, payCmd); err != nil {
		return fmt.Errorf("pay order: %w", err)
	}
	logger.InfoContext(ctx, "order paid", "order_id", orderID.String())

	query, err := queries.NewGetOrderReportQuery(orderID)
	if err != nil {
		return err
	}
	report, err := root.CreateGetOrderReportQueryHandler().Handle(ctx, query)
	if err != nil {
		return fmt.Errorf("order report: %w", err)
	}

	reporter := root.CreateOrderReporter()
	if err = reporter.ListItems(report.Order); err != nil {
		return err
	}
	return reporter.CheckoutSummary(report.Order, report.PaymentStatus)
}
