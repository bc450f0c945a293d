package payment

import (
	"github.com/tidwall/btree"

	"github.com/selectdb/design_patterns/pkg/xerror"
)

var (
	ErrStrategyExists   = xerror.NewWithoutStack(xerror.Payment, "payment strategy exists")
	ErrStrategyNotFound = xerror.NewWithoutStack(xerror.Payment, "payment strategy not found")
	ErrNilStrategy      = xerror.NewWithoutStack(xerror.Payment, "nil payment strategy")
)

// Registry keeps strategies by name, names are listed in sorted order
type Registry struct {
	strategies btree.Map[string, PaymentStrategy]
}

func NewRegistry(strategies ...PaymentStrategy) (*Registry, error) {
	r := &Registry{}
	for _, strategy := range strategies {
		if err := r.Register(strategy); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Register(strategy PaymentStrategy) error {
	if strategy == nil {
		return xerror.XWrapf(ErrNilStrategy, "register strategy #%d", r.strategies.Len()+1)
	}

	name := strategy.Name()
	if _, ok := r.strategies.Get(name); ok {
		return xerror.XWrapf(ErrStrategyExists, "name: %s", name)
	}

	r.strategies.Set(name, strategy)
	return nil
}

func (r *Registry) Get(name string) (PaymentStrategy, bool) {
	return r.strategies.Get(name)
}

func (r *Registry) Names() []string {
	return r.strategies.Keys()
}

func (r *Registry) Len() int {
	return r.strategies.Len()
}

// Use sets the strategy registered as name on gateway
func (r *Registry) Use(gateway *PaymentGateway, name string) error {
	strategy, ok := r.strategies.Get(name)
	if !ok {
		return xerror.XWrapf(ErrStrategyNotFound, "name: %s", name)
	}

	gateway.SetPaymentStrategy(strategy)
	return nil
}
