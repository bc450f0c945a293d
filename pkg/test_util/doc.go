package test_util

//go:generate mockgen -destination=mock_observer.go -package=test_util github.com/selectdb/design_patterns/pkg/weather Observer
//go:generate mockgen -destination=mock_strategy.go -package=test_util github.com/selectdb/design_patterns/pkg/payment PaymentStrategy
