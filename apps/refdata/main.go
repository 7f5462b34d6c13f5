// Copyright 2025 The polygon-go Authors

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"
	"github.com/tehcoderer/polygon-go/rest"
	"github.com/tehcoderer/polygon-go/rest/reference"
	"github.com/tehcoderer/polygon-go/table"

	toml "github.com/pelletier/go-toml/v2"
	"gonum.org/v1/gonum/stat"
)

type Flags struct {
	Config   string // default: ~/.polygon-go/config.toml
	LogLevel logging.Level
	// Exactly one of the subcommands: status, holidays, tickers, dividends.
	Command string
	Ticker  string // required for dividends
	Market  string // optional market filter for tickers
	Limit   int    // per-page limit for listings
	CSV     bool   // dump CSV format; default: text
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("refdata", flag.ExitOnError)
	fs.StringVar(&flags.Config, "config",
		filepath.Join(os.Getenv("HOME"), ".polygon-go", "config.toml"),
		"path to the configuration file")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")
	fs.StringVar(&flags.Ticker, "ticker", "", "ticker symbol for -dividends")
	fs.StringVar(&flags.Market, "market", "", "market filter for tickers: stocks, crypto, fx, otc, indices")
	fs.IntVar(&flags.Limit, "limit", 100, "number of results per page")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, errors.Reason(
			"expected exactly one command: status, holidays, tickers or dividends")
	}
	flags.Command = fs.Arg(0)
	switch flags.Command {
	case "status", "holidays", "tickers":
	case "dividends":
		if flags.Ticker == "" {
			return nil, errors.Reason("dividends requires a -ticker argument")
		}
	default:
		return nil, errors.Reason("unknown command: '%s'", flags.Command)
	}
	return &flags, nil
}

type Config struct {
	Key     string `toml:"key"`      // your API key
	BaseURL string `toml:"base_url"` // overrides the default server URL
}

func parseConfig(filePath string) (*Config, error) {
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sample := `key = "YourSecretAPIKey"
`
			err = errors.Annotate(err,
				"config file '%s' does not exist.\nPlease create config file containing:\n%s",
				filePath, sample)
			return nil, err
		} else {
			return nil, errors.Annotate(err,
				"cannot check config file for existence: '%s'", filePath)
		}
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	var c Config
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	if c.Key == "" {
		return nil, errors.Reason("config file %s has no API key", filePath)
	}
	return &c, nil
}

func statusTable(ctx context.Context) (*table.Table, error) {
	status, err := reference.GetMarketStatus(ctx, nil)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch market status")
	}
	tbl := table.New("Market", "After Hours", "Early Hours", "NYSE", "Nasdaq", "OTC", "Server Time")
	err = tbl.Add(
		status.Market,
		strconv.FormatBool(status.AfterHours),
		strconv.FormatBool(status.EarlyHours),
		status.Exchanges.NYSE,
		status.Exchanges.Nasdaq,
		status.Exchanges.OTC,
		status.ServerTime,
	)
	if err != nil {
		return nil, errors.Annotate(err, "failed to add status row")
	}
	return tbl, nil
}

func holidaysTable(ctx context.Context) (*table.Table, error) {
	holidays, err := reference.GetMarketHolidays(ctx, nil)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch market holidays")
	}
	tbl := table.New("Date", "Exchange", "Name", "Status", "Open", "Close")
	for _, h := range holidays {
		err := tbl.Add(h.Date.String(), h.Exchange, h.Name, h.Status, h.Open, h.Close)
		if err != nil {
			return nil, errors.Annotate(err, "failed to add holiday row")
		}
	}
	return tbl, nil
}

// marketCounts aggregates the number of tickers per market type.
func marketCounts(tickers []reference.Ticker) map[string]int {
	it := iterator.FromSlice(tickers)
	return iterator.Reduce[reference.Ticker, map[string]int](
		it, make(map[string]int),
		func(t reference.Ticker, counts map[string]int) map[string]int {
			counts[t.Market]++
			return counts
		})
}

func tickersTable(ctx context.Context, flags *Flags) (*table.Table, string, error) {
	it := reference.ListTickers(ctx, &reference.ListTickersParams{
		Market: reference.Market(flags.Market),
		Limit:  flags.Limit,
		Sort:   reference.SortTicker,
		Order:  reference.Asc,
	})
	tickers, err := it.Collect()
	if err != nil {
		return nil, "", errors.Annotate(err, "failed to fetch tickers")
	}
	tbl := table.New("Ticker", "Name", "Market", "Primary Exchange", "Type", "Active")
	for _, t := range tickers {
		err := tbl.Add(t.Ticker, t.Name, t.Market, t.PrimaryExchange, t.Type,
			strconv.FormatBool(t.Active))
		if err != nil {
			return nil, "", errors.Annotate(err, "failed to add ticker row")
		}
	}
	summary := fmt.Sprintf("%d tickers", len(tickers))
	counts := marketCounts(tickers)
	markets := make([]string, 0, len(counts))
	for m := range counts {
		markets = append(markets, m)
	}
	sort.Strings(markets)
	for _, m := range markets {
		summary += fmt.Sprintf("; %s: %d", m, counts[m])
	}
	return tbl, summary, nil
}

func dividendsTable(ctx context.Context, flags *Flags) (*table.Table, string, error) {
	it := reference.ListDividends(ctx, &reference.ListDividendsParams{
		Ticker: rest.Comparable{Eq: flags.Ticker},
		Limit:  flags.Limit,
		Sort:   reference.SortExDividendDate,
		Order:  reference.Desc,
	})
	dividends, err := it.Collect()
	if err != nil {
		return nil, "", errors.Annotate(err, "failed to fetch dividends for %s", flags.Ticker)
	}
	tbl := table.New("Ex-Date", "Pay Date", "Type", "Frequency", "Cash Amount", "Currency")
	amounts := make([]float64, len(dividends))
	for i, d := range dividends {
		amounts[i] = d.CashAmount
		err := tbl.Add(
			d.ExDividendDate.String(),
			d.PayDate.String(),
			string(d.DividendType),
			strconv.Itoa(int(d.Frequency)),
			strconv.FormatFloat(d.CashAmount, 'f', -1, 64),
			d.Currency,
		)
		if err != nil {
			return nil, "", errors.Annotate(err, "failed to add dividend row")
		}
	}
	if len(amounts) == 0 {
		return tbl, "no dividends", nil
	}
	sort.Float64s(amounts)
	mean := stat.Mean(amounts, nil)
	median := stat.Quantile(0.5, stat.Empirical, amounts, nil)
	summary := fmt.Sprintf("%d dividends; cash amount mean: %.4f, median: %.4f",
		len(amounts), mean, median)
	return tbl, summary, nil
}

func printData(ctx context.Context, flags *Flags, w io.Writer) error {
	config, err := parseConfig(flags.Config)
	if err != nil {
		return errors.Annotate(err, "failed to parse config")
	}
	if config.BaseURL != "" {
		rest.URL = config.BaseURL
	}
	ctx = rest.UseClient(ctx, config.Key)

	var tbl *table.Table
	var summary string
	switch flags.Command {
	case "status":
		tbl, err = statusTable(ctx)
	case "holidays":
		tbl, err = holidaysTable(ctx)
	case "tickers":
		tbl, summary, err = tickersTable(ctx, flags)
	case "dividends":
		tbl, summary, err = dividendsTable(ctx, flags)
	}
	if err != nil {
		return errors.Annotate(err, "command '%s' failed", flags.Command)
	}
	if flags.CSV {
		if err := tbl.WriteCSV(w); err != nil {
			return errors.Annotate(err, "failed to print CSV")
		}
	} else {
		if err := tbl.WriteText(w); err != nil {
			return errors.Annotate(err, "failed to print text")
		}
	}
	if summary != "" {
		if _, err := fmt.Fprintln(w, summary); err != nil {
			return errors.Annotate(err, "failed to print summary")
		}
	}
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := printData(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
