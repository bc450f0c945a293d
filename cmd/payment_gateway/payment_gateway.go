package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/selectdb/design_patterns/pkg/payment"
	"github.com/selectdb/design_patterns/pkg/utils"
	"github.com/selectdb/design_patterns/pkg/version"
	"github.com/selectdb/design_patterns/pkg/xmetrics"
)

const demoName = "payment_gateway"

var (
	showVersion   bool
	enableMetrics bool
)

func init() {
	flag.BoolVar(&showVersion, "version", false, "The program's version")
	flag.BoolVar(&enableMetrics, "metrics", true, "install the prometheus metrics sink")
}

func run(out io.Writer) error {
	// Step 1: create payment gateway
	gateway := payment.NewPaymentGateway(out)

	// Step 2: create payment strategies
	registry, err := payment.NewRegistry(
		payment.NewCreditCardStrategy("1234-5678-9012-3456", "12/2025"),
		payment.NewPayPalStrategy("user@example.com"),
		payment.NewBankTransferStrategy("1234567890"),
	)
	if err != nil {
		return err
	}
	log.Debugf("payment strategies: %v", registry.Names())

	// Step 3: pay with each strategy in turn
	payments := []struct {
		strategy string
		amount   int
	}{
		{"credit_card", 100},
		{"paypal", 200},
		{"bank_transfer", 300},
	}
	for _, p := range payments {
		if err := registry.Use(gateway, p.strategy); err != nil {
			return err
		}
		if err := gateway.Pay(p.amount); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	flag.Parse()
	if showVersion {
		fmt.Println(version.GetVersion())
		os.Exit(0)
	}

	if err := utils.InitLog(); err != nil {
		fmt.Fprintf(os.Stderr, "init log failed: %+v\n", err)
		os.Exit(1)
	}

	if err := demo(); err != nil {
		log.Fatalf("payment failed: %+v", err)
	}
}

// demo runs with the demo name bound for logging, metrics are logged on return
func demo() error {
	defer utils.SetDemoName(demoName)()

	log.Infof("%s start, version: %s", demoName, version.GetVersion())
	if enableMetrics {
		if err := xmetrics.InitGlobal(demoName); err != nil {
			return err
		}
		defer xmetrics.LogSnapshot(demoName)
	}

	return run(os.Stdout)
}
