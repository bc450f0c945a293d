package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/selectdb/design_patterns/pkg/utils"
	"github.com/selectdb/design_patterns/pkg/version"
	"github.com/selectdb/design_patterns/pkg/weather"
	"github.com/selectdb/design_patterns/pkg/xmetrics"
)

const demoName = "weather_forecast"

var (
	showVersion   bool
	enableMetrics bool
)

func init() {
	flag.BoolVar(&showVersion, "version", false, "The program's version")
	flag.BoolVar(&enableMetrics, "metrics", true, "install the prometheus metrics sink")
}

func run(out io.Writer) {
	// Step 1: create weather forecast system
	forecast := weather.NewWeatherForecast()

	// Step 2: register display devices as observers
	forecast.Register(weather.NewTemperatureDisplay(out))
	forecast.Register(weather.NewHumidityDisplay(out))
	forecast.Register(weather.NewWindSpeedDisplay(out))

	// Step 3: update weather forecast data
	forecast.UpdateData(25, 60, 10)
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
		log.Fatalf("weather forecast failed: %+v", err)
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

	run(os.Stdout)
	return nil
}
