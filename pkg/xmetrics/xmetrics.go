package xmetrics

import (
	"errors"

	"github.com/hashicorp/go-metrics"
	"github.com/hashicorp/go-metrics/prometheus"
	"github.com/selectdb/design_patterns/pkg/xerror"
)

func InitGlobal(serviceName string) error {
	sink, err := prometheus.NewPrometheusSink()
	if err != nil {
		return xerror.Wrap(err, xerror.Normal, "init prometheus sink failed")
	}

	return InitGlobalWithSink(serviceName, sink)
}

func InitGlobalWithSink(serviceName string, sink metrics.MetricSink) error {
	conf := metrics.DefaultConfig(serviceName)
	// counters only, no runtime or host gauges
	conf.EnableRuntimeMetrics = false
	conf.EnableHostname = false

	if _, err := metrics.NewGlobal(conf, sink); err != nil {
		return xerror.Wrap(err, xerror.Normal, "new global metrics failed")
	}

	return nil
}

// AddError counts err by category, plain errors are counted as normal
func AddError(err error) {
	if err == nil {
		return
	}

	var xerr *xerror.XError
	if !errors.As(err, &xerr) {
		xerr = xerror.NewWithoutStack(xerror.Normal, err.Error())
	}
	metrics.IncrCounter(ErrorMetrics(xerr).Tag(), 1)
}

func WeatherUpdated() {
	metrics.IncrCounter(WeatherMetrics().Updated().Tag(), 1)
}

func WeatherNotified(observer string) {
	metrics.IncrCounter(WeatherMetrics().Notified(observer).Tag(), 1)
}

func Paid(strategyName string, amount int) {
	metrics.IncrCounter(PaymentMetrics(strategyName).Paid().Tag(), 1)
	metrics.AddSample(PaymentMetrics(strategyName).Amount().Tag(), float32(amount))
}

func NodePrinted() {
	metrics.IncrCounter(FileSystemMetrics().Printed().Tag(), 1)
}
