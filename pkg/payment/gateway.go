package payment

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/selectdb/design_patterns/pkg/xerror"
	"github.com/selectdb/design_patterns/pkg/xmetrics"
)

var ErrNoStrategy = xerror.NewWithoutStack(xerror.Payment, "no payment strategy configured")

// PaymentGateway delegates every payment to the most recently set strategy
type PaymentGateway struct {
	out      io.Writer
	strategy PaymentStrategy
}

func NewPaymentGateway(out io.Writer) *PaymentGateway {
	return &PaymentGateway{out: out}
}

// SetPaymentStrategy replaces the current strategy, nil clears it
func (g *PaymentGateway) SetPaymentStrategy(strategy PaymentStrategy) {
	if strategy == nil {
		log.Debug("clear payment strategy")
	} else {
		log.Debugf("set payment strategy %s", strategy.Name())
	}
	g.strategy = strategy
}

func (g *PaymentGateway) Strategy() PaymentStrategy {
	return g.strategy
}

func (g *PaymentGateway) Pay(amount int) error {
	if g.strategy == nil {
		err := xerror.XWrapf(ErrNoStrategy, "pay %d", amount)
		xmetrics.AddError(err)
		return err
	}

	name := g.strategy.Name()
	log.Tracef("pay %d by %s", amount, name)
	if err := g.strategy.Pay(g.out, amount); err != nil {
		xmetrics.AddError(err)
		return xerror.Wrapf(err, xerror.Payment, "pay %d by %s", amount, name)
	}

	xmetrics.Paid(name, amount)
	return nil
}
