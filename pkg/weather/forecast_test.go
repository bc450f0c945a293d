package weather

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selectdb/design_patterns/pkg/xmetrics"
)

type recorder struct {
	name  string
	calls *[]string
	last  Measurement
}

func (r *recorder) Name() string {
	return r.name
}

func (r *recorder) Update(m Measurement) {
	*r.calls = append(*r.calls, r.name)
	r.last = m
}

func newRecorders(calls *[]string, names ...string) []*recorder {
	recorders := make([]*recorder, 0, len(names))
	for _, name := range names {
		recorders = append(recorders, &recorder{name: name, calls: calls})
	}
	return recorders
}

func TestUpdateDataNotifiesInRegistrationOrder(t *testing.T) {
	var calls []string
	forecast := NewWeatherForecast()
	recorders := newRecorders(&calls, "c", "a", "b")
	for _, r := range recorders {
		forecast.Register(r)
	}

	forecast.UpdateData(1, 2, 3)
	assert.Equal(t, []string{"c", "a", "b"}, calls)

	forecast.UpdateData(4, 5, 6)
	assert.Equal(t, []string{"c", "a", "b", "c", "a", "b"}, calls)
	for _, r := range recorders {
		assert.Equal(t, Measurement{Temperature: 4, Humidity: 5, WindSpeed: 6}, r.last)
	}
	assert.Equal(t, Measurement{Temperature: 4, Humidity: 5, WindSpeed: 6}, forecast.Measurement())
}

func TestRegisterDuplicate(t *testing.T) {
	var calls []string
	forecast := NewWeatherForecast()
	r := newRecorders(&calls, "dup")[0]
	forecast.Register(r)
	forecast.Register(r)
	forecast.Register(nil)
	assert.Equal(t, 2, forecast.Len())

	forecast.UpdateData(0, 0, 0)
	assert.Equal(t, []string{"dup", "dup"}, calls)

	// only the first registration is removed
	forecast.Unregister(r)
	assert.Equal(t, 1, forecast.Len())
}

func TestUnregister(t *testing.T) {
	var calls []string
	forecast := NewWeatherForecast()
	recorders := newRecorders(&calls, "a", "b", "c")
	for _, r := range recorders {
		forecast.Register(r)
	}

	forecast.Unregister(recorders[1])
	forecast.UpdateData(10, 20, 30)
	assert.Equal(t, []string{"a", "c"}, calls)
	assert.Equal(t, Measurement{}, recorders[1].last)

	// absent observer is a no-op
	forecast.Unregister(recorders[1])
	forecast.Unregister(&recorder{name: "never", calls: &calls})
	assert.Equal(t, 2, forecast.Len())
}

func TestUnregisterDuringNotify(t *testing.T) {
	var calls []string
	forecast := NewWeatherForecast()

	var self ObserverFunc
	self = func(Measurement) {
		calls = append(calls, "self")
		forecast.Unregister(&self)
	}
	after := newRecorders(&calls, "after")[0]

	forecast.Register(&self)
	forecast.Register(after)

	forecast.UpdateData(1, 1, 1)
	assert.Equal(t, []string{"self", "after"}, calls)

	forecast.UpdateData(2, 2, 2)
	assert.Equal(t, []string{"self", "after", "after"}, calls)
}

func TestDisplays(t *testing.T) {
	var out bytes.Buffer
	forecast := NewWeatherForecast()
	forecast.Register(NewTemperatureDisplay(&out))
	forecast.Register(NewHumidityDisplay(&out))
	forecast.Register(NewWindSpeedDisplay(&out))

	forecast.UpdateData(25, 60, 10)
	assert.Equal(t, "Temperature: 25°C\nHumidity: 60%\nWind Speed: 10 km/h\n", out.String())

	out.Reset()
	forecast.UpdateData(-3.5, 42.25, 0)
	assert.Equal(t, "Temperature: -3.5°C\nHumidity: 42.25%\nWind Speed: 0 km/h\n", out.String())
}

func TestNotifyMetrics(t *testing.T) {
	sink := metrics.NewInmemSink(time.Minute, time.Minute)
	require.NoError(t, xmetrics.InitGlobalWithSink("test", sink))

	var out bytes.Buffer
	forecast := NewWeatherForecast()
	forecast.Register(NewTemperatureDisplay(&out))
	var anonymous ObserverFunc = func(Measurement) {}
	forecast.Register(&anonymous)
	forecast.UpdateData(1, 2, 3)

	data := sink.Data()
	require.NotEmpty(t, data)
	counters := data[len(data)-1].Counters
	assert.Equal(t, 1, counters["test.weather.updated"].Count)
	assert.Equal(t, 1, counters["test.weather.notified.temperature"].Count)
	assert.Equal(t, 1, counters["test.weather.notified.anonymous"].Count)
}

// sliceObserver has a value receiver and a slice field, so it has no ==
type sliceObserver struct {
	seen []float64
	hits *int
}

func (s sliceObserver) Update(Measurement) {
	*s.hits++
}

func TestUnregisterUncomparableObserver(t *testing.T) {
	hits := 0
	forecast := NewWeatherForecast()
	forecast.Register(sliceObserver{seen: []float64{1}, hits: &hits})

	assert.NotPanics(t, func() {
		forecast.Unregister(sliceObserver{hits: &hits})
	})
	assert.Equal(t, 1, forecast.Len())

	// a comparable observer is still removed past an uncomparable one
	var calls []string
	r := newRecorders(&calls, "r")[0]
	forecast.Register(r)
	assert.NotPanics(t, func() {
		forecast.Unregister(r)
	})
	assert.Equal(t, 1, forecast.Len())

	forecast.UpdateData(1, 2, 3)
	assert.Equal(t, 1, hits)
	assert.Empty(t, calls)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestDisplayWriteErrorCounted(t *testing.T) {
	sink := metrics.NewInmemSink(time.Minute, time.Minute)
	require.NoError(t, xmetrics.InitGlobalWithSink("test", sink))

	var out bytes.Buffer
	forecast := NewWeatherForecast()
	forecast.Register(NewTemperatureDisplay(failingWriter{}))
	forecast.Register(NewHumidityDisplay(&out))

	forecast.UpdateData(25, 60, 10)
	// a failed display does not stop the next one
	assert.Equal(t, "Humidity: 60%\n", out.String())

	data := sink.Data()
	require.NotEmpty(t, data)
	counters := data[len(data)-1].Counters
	assert.Equal(t, 1, counters["test.error.weather"].Count)
}
