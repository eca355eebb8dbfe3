package cmd_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"shop/cmd"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCheckout(t *testing.T) {
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	root := cmd.NewCompositionRoot(cmd.Config{}, logger, &out)

	require.NoError(t, cmd.RunCheckout(t.Context(), &root))

	report := out.String()
	assert.True(t, strings.HasPrefix(report, "Username: Marco\n"))
	assert.Contains(t, report, "Apple")
	assert.Contains(t, report, "Cherry")
	assert.Contains(t, report, "\nTotal: 8000\n")
	assert.True(t, strings.HasSuffix(report, "Payment Status: PAID\n"))
	assert.Contains(t, logs.String(), "order paid")
}

func TestCompositionRoot_PayOrdersBatch(t *testing.T) {
	ctx := t.Context()
	root := cmd.NewCompositionRoot(cmd.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)), io.Discard)

	address, err := kernel.NewAddress("New York", "Broadway", 69)
	require.NoError(t, err)
	marco, err := user.NewUser("Marco", "aunglynn@marco.com", address)
	require.NoError(t, err)
	apple, err := order.NewItem("Apple", 5, 1_000)
	require.NoError(t, err)

	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	for _, id := range ids {
		createCmd, cmdErr := commands.NewCreateOrderCommand(id, marco, []order.Item{apple})
		require.NoError(t, cmdErr)
		require.NoError(t, root.CreateCreateOrderCommandHandler().Handle(ctx, createCmd))
	}

	payFirst, _ := commands.NewPayOrderCommand(ids[0])
	require.NoError(t, root.CreatePayOrderCommandHandler().Handle(ctx, payFirst))

	cherry, _ := order.NewItem("Cherry", 2, 1_500)
	addCmd, _ := commands.NewAddItemCommand(ids[1], cherry)
	require.NoError(t, root.CreateAddItemCommandHandler().Handle(ctx, addCmd))

	batch, _ := commands.NewPayOrdersCommand(ids)
	result, err := root.CreatePayOrdersCommandHandler().Handle(ctx, batch)

	require.ErrorIs(t, err, order.ErrFailedPayment)
	assert.Equal(t, ids[1:], result.Paid)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, ids[0], result.Failed[0].OrderID)

	query, _ := queries.NewGetOrderReportQuery(ids[1])
	report, err := root.CreateGetOrderReportQueryHandler().Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(8_000), report.Order.TotalPrice())
	assert.Equal(t, order.Paid, report.PaymentStatus)
}
