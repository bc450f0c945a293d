package weather

import (
	"reflect"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/selectdb/design_patterns/pkg/utils"
	"github.com/selectdb/design_patterns/pkg/xmetrics"
)

type Measurement struct {
	Temperature float64
	Humidity    float64
	WindSpeed   float64
}

type Observer = utils.Observer[Measurement]

// ObserverFunc adapts a plain func to an Observer, it is not comparable, so
// keep the *ObserverFunc if it needs to be unregistered later
type ObserverFunc func(Measurement)

func (f *ObserverFunc) Update(m Measurement) {
	(*f)(m)
}

// WeatherForecast is the subject, observers are notified in registration order
type WeatherForecast struct {
	observers   []Observer
	measurement Measurement
}

var _ utils.Subject[Measurement] = (*WeatherForecast)(nil)

func NewWeatherForecast() *WeatherForecast {
	return &WeatherForecast{
		observers: make([]Observer, 0),
	}
}

// Register appends observer, the same observer may be registered twice
func (w *WeatherForecast) Register(observer Observer) {
	if observer == nil {
		return
	}

	log.Tracef("register observer %s", observerName(observer))
	w.observers = append(w.observers, observer)
}

// Unregister removes the first registration of observer, absent observers are ignored
func (w *WeatherForecast) Unregister(observer Observer) {
	index := w.indexOf(observer)
	if index < 0 {
		log.Debugf("unregister observer %s, not registered", observerName(observer))
		return
	}

	log.Tracef("unregister observer %s", observerName(observer))
	w.observers = slices.Delete(w.observers, index, index+1)
}

// indexOf returns -1 for an observer whose dynamic type has no ==, such an
// observer can be registered but never matched
func (w *WeatherForecast) indexOf(observer Observer) int {
	if observer == nil || !reflect.TypeOf(observer).Comparable() {
		return -1
	}
	return slices.Index(w.observers, observer)
}

func (w *WeatherForecast) Notify(m Measurement) {
	// observers may unregister themselves while being notified
	observers := slices.Clone(w.observers)

	log.Tracef("notify %d observers, measurement: %+v", len(observers), m)
	for _, observer := range observers {
		observer.Update(m)
		xmetrics.WeatherNotified(observerName(observer))
	}
}

// UpdateData overwrites the measurement and notifies every observer
func (w *WeatherForecast) UpdateData(temperature, humidity, windSpeed float64) {
	w.measurement = Measurement{
		Temperature: temperature,
		Humidity:    humidity,
		WindSpeed:   windSpeed,
	}
	xmetrics.WeatherUpdated()

	w.Notify(w.measurement)
}

func (w *WeatherForecast) Measurement() Measurement {
	return w.measurement
}

func (w *WeatherForecast) Len() int {
	return len(w.observers)
}
