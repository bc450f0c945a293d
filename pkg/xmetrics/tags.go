package xmetrics

import "github.com/selectdb/design_patterns/pkg/xerror"

type IMetricsTag interface {
	Tag() []string
}

type metricsTag struct {
	tags []string
}

// weather metrics
type weatherMetrics struct {
	metricsTag
}

func WeatherMetrics() *weatherMetrics {
	return &weatherMetrics{
		metricsTag: metricsTag{[]string{"weather"}},
	}
}

func (w *weatherMetrics) Tag() []string {
	return w.tags
}

func (w *weatherMetrics) Updated() IMetricsTag {
	w.tags = append(w.tags, "updated")
	return w
}

func (w *weatherMetrics) Notified(observer string) IMetricsTag {
	w.tags = append(w.tags, "notified", observer)
	return w
}

// payment metrics
type paymentMetrics struct {
	metricsTag
	name string
}

func PaymentMetrics(strategyName string) *paymentMetrics {
	return &paymentMetrics{
		metricsTag: metricsTag{[]string{"payment"}},
		name:       strategyName,
	}
}

func (p *paymentMetrics) Tag() []string {
	p.tags = append(p.tags, p.name)
	return p.tags
}

func (p *paymentMetrics) Paid() IMetricsTag {
	p.tags = append(p.tags, "paid")
	return p
}

func (p *paymentMetrics) Amount() IMetricsTag {
	p.tags = append(p.tags, "amount")
	return p
}

// filesystem metrics
type fileSystemMetrics struct {
	metricsTag
}

func FileSystemMetrics() *fileSystemMetrics {
	return &fileSystemMetrics{
		metricsTag: metricsTag{[]string{"filesystem"}},
	}
}

func (f *fileSystemMetrics) Tag() []string {
	return f.tags
}

func (f *fileSystemMetrics) Printed() IMetricsTag {
	f.tags = append(f.tags, "printed")
	return f
}

// error metrics
type errorMetrics struct {
	metricsTag
}

func ErrorMetrics(err *xerror.XError) IMetricsTag {
	errMetrics := &errorMetrics{
		metricsTag: metricsTag{[]string{"error", err.Category().Name()}},
	}

	return errMetrics
}

func (e *errorMetrics) Tag() []string {
	return e.tags
}
