package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/format"
	"github.com/rovshanmuradov/coinfolio/internal/portfolio"
)

// Messages shown for the two failures a user can cause.
const (
	InvalidQuantityMessage = "Please enter a valid quantity"
	AddFailedMessage       = "Failed to add coin to portfolio. Please try again."
)

type portfolioCmd struct {
	env *Env
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "list the holdings in the portfolio" }
func (*portfolioCmd) Usage() string {
	return `coinfolio portfolio

  Prints every holding with its quantity, the price when it was added and
  its value, followed by the portfolio total.
`
}

func (*portfolioCmd) SetFlags(*flag.FlagSet) {}

func (c *portfolioCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	holdings := c.env.Store.Load()
	if len(holdings) == 0 {
		fmt.Fprintln(c.env.Out, "Your portfolio is empty. Add some coins to get started!")
		return subcommands.ExitSuccess
	}

	rows := make([][]string, len(holdings))
	for i, h := range holdings {
		rows[i] = []string{
			h.ID,
			fmt.Sprintf("%s (%s)", h.Name, strings.ToUpper(h.Symbol)),
			format.Quantity(h.Quantity),
			format.USD(h.PriceWhenAdded),
			format.USDDecimal(h.Value()),
			h.AddedAt.Format("2006-01-02"),
		}
	}

	headers := []string{"ID", "Coin", "Quantity", "Price When Added", "Current Value", "Added"}
	fmt.Fprintln(c.env.Out, renderTable(headers, rows, 2, 3, 4))
	fmt.Fprintf(c.env.Out, "Total Value: %s\n", format.USDDecimal(portfolio.TotalValue(holdings)))
	fmt.Fprintf(c.env.Out, "Number of Assets: %d\n", len(holdings))
	return subcommands.ExitSuccess
}

type addCmd struct {
	env *Env
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a quantity of a coin to the portfolio" }
func (*addCmd) Usage() string {
	return `coinfolio add <id> <quantity>

  Adds quantity of the coin. A coin already held has its quantity increased;
  a new coin is priced at its current market price.
`
}

func (*addCmd) SetFlags(*flag.FlagSet) {}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return c.env.usage("add: a coin id and a quantity are required")
	}
	id, raw := f.Arg(0), f.Arg(1)

	quantity, err := portfolio.ParseQuantity(raw)
	if err != nil {
		c.env.Logger.Info("Rejected quantity", zap.String("input", raw))
		return c.env.fail("%s", InvalidQuantityMessage)
	}

	c.env.Store.Load()
	holdings, err := c.env.Store.Add(ctx, id, quantity, c.env.Quotes)
	if err != nil {
		c.env.Logger.Error("Error adding coin to portfolio", zap.String("coin", id), zap.Error(err))
		return c.env.fail("%s", AddFailedMessage)
	}

	i := holdings.Find(strings.TrimSpace(id))
	if i < 0 {
		c.env.Logger.Error("Added coin missing from portfolio", zap.String("coin", id))
		return c.env.fail("%s", AddFailedMessage)
	}
	h := holdings[i]
	fmt.Fprintf(c.env.Out, "Holding %s: %s at %s\n", h.ID, format.Quantity(h.Quantity), format.USD(h.PriceWhenAdded))
	return subcommands.ExitSuccess
}

type removeCmd struct {
	env *Env
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a coin from the portfolio" }
func (*removeCmd) Usage() string {
	return `coinfolio remove <id>

  Removes the holding of the coin. Removing a coin that is not held is not
  an error.
`
}

func (*removeCmd) SetFlags(*flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.env.usage("remove: exactly one coin id is required")
	}
	id := f.Arg(0)

	before := c.env.Store.Load()
	after, err := c.env.Store.Remove(id)
	if err != nil {
		c.env.Logger.Error("Failed to remove holding", zap.String("coin", id), zap.Error(err))
		return c.env.fail("Error removing %q: %v", id, err)
	}

	if len(after) == len(before) {
		fmt.Fprintf(c.env.Out, "%s is not in the portfolio\n", id)
	} else {
		fmt.Fprintf(c.env.Out, "Removed %s\n", id)
	}
	return subcommands.ExitSuccess
}
