package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsclient"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
	"github.com/sirupsen/logrus"
)

var (
	f_address = flag.String("address", "127.0.0.1:7497", "TWS/gateway host:port to dial")
	f_client  = flag.Int64("client", 0, "client id to identify this session with")
	f_dial    = flag.Duration("dial", 10*time.Second, "dial timeout")
	f_timeout = flag.Duration("timeout", 30*time.Second, "per-request timeout")
	f_pacing  = flag.Duration("pacing", 500*time.Millisecond, "minimum subscribe/cancel pacing window")
	f_level   = flag.String("level", "info", "log level: debug, info, warn, error")
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s [flags] <command> [args]

commands:
  time                       print the server's current time
  nextid                     print the next valid order id
  contract <symbol> <sectype> <currency>   look up contract details
  depthexchanges             request the list of deep market depth exchanges
  watch                      subscribe to errors/messages and print them until interrupted

flags:
`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	level, err := logrus.ParseLevel(*f_level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "twsctl: invalid -level %q: %v\n", *f_level, err)
		os.Exit(1)
	}
	logger := logrus.New()
	logger.SetLevel(level)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cfg := twsclient.DefaultConfig(*f_address, twsmodel.ClientId(*f_client))
	cfg.DialTimeout = *f_dial
	cfg.RequestTimeout = *f_timeout
	cfg.PacingWindow = *f_pacing
	cfg.Logger = logger

	c, err := twsclient.Connect(cfg)
	if err != nil {
		logger.WithError(err).Fatal("twsctl: connect failed")
	}
	defer c.Disconnect()

	if err := dispatch(c, args[0], args[1:]); err != nil {
		logger.WithError(err).Fatal("twsctl: command failed")
	}
}

func dispatch(c *twsclient.Client, cmd string, args []string) error {
	switch strings.ToLower(cmd) {
	case "time":
		return cmdTime(c)
	case "nextid":
		return cmdNextID(c)
	case "contract":
		return cmdContract(c, args)
	case "depthexchanges":
		return c.RequestMarketDepthExchanges()
	case "watch":
		return cmdWatch(c)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdTime(c *twsclient.Client) error {
	t, err := c.GetCurrentTime()
	if err != nil {
		return fmt.Errorf("get current time: %w", err)
	}
	fmt.Println(t.Format(time.RFC3339))
	return nil
}

func cmdNextID(c *twsclient.Client) error {
	id, err := c.GetNextValidOrderID()
	if err != nil {
		return fmt.Errorf("get next valid order id: %w", err)
	}
	fmt.Println(int64(id))
	return nil
}

func cmdContract(c *twsclient.Client, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: contract <symbol> <sectype> <currency>")
	}
	secType, err := parseSecType(args[1])
	if err != nil {
		return err
	}
	contract := twsmodel.Contract{
		Symbol:   args[0],
		SecType:  secType,
		Currency: args[2],
		Exchange: "SMART",
	}
	details, err := c.GetContractDetails(contract)
	if err != nil {
		return fmt.Errorf("get contract details: %w", err)
	}
	for _, d := range details {
		fmt.Printf("%d\t%s\t%s\t%s\n", d.Contract.ConID, d.Contract.Symbol, d.Contract.Exchange, d.LongName)
	}
	return nil
}

func parseSecType(raw string) (twscat.SecType, error) {
	st, err := twscat.ParseSecType(strings.ToUpper(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid sectype %q: %w", raw, err)
	}
	return st, nil
}

func cmdWatch(c *twsclient.Client) error {
	id, ch := c.SubscribeErrors()
	defer c.UnsubscribeErrors(id)
	fmt.Println("watching for server errors/messages, press Ctrl-C to stop")
	for evt := range ch {
		fmt.Printf("%#v\n", evt)
	}
	return nil
}
