// Package console renders orders as plain-text reports.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"shop/internal/core/domain/model/order"
)

// OrderReporter writes item listings and checkout summaries to an io.Writer.
// The column layout is meant for people, not for parsing.
type OrderReporter struct {
	out    io.Writer
	logger *slog.Logger
}

// NewOrderReporter creates a reporter writing to out.
func NewOrderReporter(out io.Writer, logger *slog.Logger) *OrderReporter {
	return &OrderReporter{
		out:    out,
		logger: logger.With("component", "order_reporter"),
	}
}

// ListItems writes the user header and one row per item in insertion order:
//
//	Username: Marco
//	| No | Item   | Quantity | Price | Total |
//	| 0  | Apple  | 5        | 1000  | 5000  |
func (r *OrderReporter) ListItems(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.out, "Username: %s\n", o.User().Name()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.out, 0, 8, 1, ' ', 0)
	fmt.Fprintln(tw, "| No\t| Item\t| Quantity\t| Price\t| Total\t|")
	items := o.Items()
	for i, item := range items {
		fmt.Fprintf(tw, "| %d\t| %s\t| %d\t| %d\t| %d\t|\n",
			i, item.Label(), item.Quantity(), item.Price(), item.TotalPrice())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	r.logger.Debug("order items listed", "order_id", o.ID().String(), "items", len(items))
	return nil
}

// CheckoutSummary writes a blank line, the order total and the given status.
func (r *OrderReporter) CheckoutSummary(o *order.Order, status order.PaymentStatus) error {
	if err := o.Validate(); err != nil {
		return err
	}

	total := o.TotalPrice()
	if _, err := fmt.Fprintf(r.out, "\nTotal: %d\nPayment Status: %s\n", total, status); err != nil {
		return err
	}

	r.logger.Debug("checkout summary written",
		"order_id", o.ID().String(), "total", total, "payment_status", status.String())
	return nil
}
