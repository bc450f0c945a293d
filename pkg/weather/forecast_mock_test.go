package weather_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/selectdb/design_patterns/pkg/test_util"
	"github.com/selectdb/design_patterns/pkg/weather"
)

func TestNotifyEachObserverOnceInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := test_util.NewMockObserver(ctrl)
	second := test_util.NewMockObserver(ctrl)
	removed := test_util.NewMockObserver(ctrl)

	forecast := weather.NewWeatherForecast()
	forecast.Register(first)
	forecast.Register(removed)
	forecast.Register(second)
	forecast.Unregister(removed)

	want := weather.Measurement{Temperature: 25, Humidity: 60, WindSpeed: 10}
	gomock.InOrder(
		first.EXPECT().Update(want).Times(1),
		second.EXPECT().Update(want).Times(1),
	)
	removed.EXPECT().Update(gomock.Any()).Times(0)

	forecast.UpdateData(25, 60, 10)
}
