package weather

import (
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/selectdb/design_patterns/pkg/xerror"
	"github.com/selectdb/design_patterns/pkg/xmetrics"
)

type namer interface {
	Name() string
}

func observerName(observer Observer) string {
	if n, ok := observer.(namer); ok {
		return n.Name()
	}
	return "anonymous"
}

// formatValue prints the shortest representation, 25 stays 25 and 25.5 stays 25.5
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// display writes one line per update, a failed write is logged, counted and dropped
type display struct {
	name   string
	out    io.Writer
	format string
}

func (d *display) Name() string {
	return d.name
}

func (d *display) show(v float64) {
	if _, err := fmt.Fprintf(d.out, d.format, formatValue(v)); err != nil {
		err = xerror.Wrapf(err, xerror.Weather, "display %s write failed", d.name)
		log.Warnf("%v", err)
		xmetrics.AddError(err)
	}
}

type TemperatureDisplay struct {
	display
}

func NewTemperatureDisplay(out io.Writer) *TemperatureDisplay {
	return &TemperatureDisplay{display{name: "temperature", out: out, format: "Temperature: %s°C\n"}}
}

func (d *TemperatureDisplay) Update(m Measurement) {
	d.show(m.Temperature)
}

type HumidityDisplay struct {
	display
}

func NewHumidityDisplay(out io.Writer) *HumidityDisplay {
	return &HumidityDisplay{display{name: "humidity", out: out, format: "Humidity: %s%%\n"}}
}

func (d *HumidityDisplay) Update(m Measurement) {
	d.show(m.Humidity)
}

type WindSpeedDisplay struct {
	display
}

func NewWindSpeedDisplay(out io.Writer) *WindSpeedDisplay {
	return &WindSpeedDisplay{display{name: "wind_speed", out: out, format: "Wind Speed: %s km/h\n"}}
}

func (d *WindSpeedDisplay) Update(m Measurement) {
	d.show(m.WindSpeed)
}
