package xmetrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/selectdb/design_patterns/pkg/xerror"
)

// Snapshot gathers the metric families of serviceName, keyed by name without
// the service prefix. Counters and gauges report their value, samples their sum
func Snapshot(gatherer prometheus.Gatherer, serviceName string) (map[string]float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, xerror.Wrap(err, xerror.Normal, "gather metrics failed")
	}

	prefix := serviceName + "_"
	values := make(map[string]float64)
	for _, family := range families {
		name := family.GetName()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		name = strings.TrimPrefix(name, prefix)

		for _, metric := range family.GetMetric() {
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				values[name] += metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				values[name] += metric.GetGauge().GetValue()
			case dto.MetricType_SUMMARY:
				values[name] += metric.GetSummary().GetSampleSum()
			}
		}
	}
	return values, nil
}

// LogSnapshot logs the metrics recorded by InitGlobal's prometheus sink at debug level
func LogSnapshot(serviceName string) {
	values, err := Snapshot(prometheus.DefaultGatherer, serviceName)
	if err != nil {
		log.Warnf("metrics snapshot failed: %+v", err)
		return
	}

	names := maps.Keys(values)
	slices.Sort(names)
	for _, name := range names {
		log.Debugf("metric %s: %v", name, values[name])
	}
}
