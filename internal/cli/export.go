package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/export"
)

type exportCmd struct {
	env *Env

	format string
	dir    string
	since  string
	coin   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the portfolio to a csv, json or yaml file" }
func (*exportCmd) Usage() string {
	return `coinfolio export [-format csv|json|yaml] [-dir path] [-since YYYY-MM-DD] [-coin id]

  Writes the holdings to portfolio_YYYYMMDD_HHMMSS.<ext> in -dir and prints
  the path.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", string(export.FormatCSV), "Output format (csv, json, yaml).")
	f.StringVar(&c.dir, "dir", c.env.Config.ExportDir, "Output directory.")
	f.StringVar(&c.since, "since", "", "Only holdings added on or after this date.")
	f.StringVar(&c.coin, "coin", "", "Only this coin.")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmtType, err := export.ParseFormat(c.format)
	if err != nil {
		return c.env.usage("export: %v", err)
	}

	opts := export.Options{Format: fmtType, OutputDir: c.dir, CoinID: c.coin}
	if c.since != "" {
		since, err := time.Parse("2006-01-02", c.since)
		if err != nil {
			return c.env.usage("export: invalid -since date %q", c.since)
		}
		opts.Since = since
	}

	path, err := c.env.Exporter.Export(c.env.Store.Load(), opts)
	if err != nil {
		c.env.Logger.Error("Export failed", zap.Error(err))
		return c.env.fail("Error exporting portfolio: %v", err)
	}
	fmt.Fprintln(c.env.Out, path)
	return subcommands.ExitSuccess
}
