package utils

import (
	"github.com/modern-go/gls"
	"github.com/sirupsen/logrus"
)

const (
	DemoField = "demo"
	// PrefixField is rendered by the prefixed formatter before the message
	PrefixField = "prefix"
)

// DemoHook copies the goroutine local demo name into every entry, both as
// the demo field and as the formatter prefix unless the entry has its own
type DemoHook struct {
	Field  string
	levels []logrus.Level
}

func (hook *DemoHook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *DemoHook) Fire(entry *logrus.Entry) error {
	demoName, ok := gls.Get(hook.Field).(string)
	if !ok || demoName == "" {
		return nil
	}

	entry.Data[hook.Field] = demoName
	if _, ok := entry.Data[PrefixField]; !ok {
		entry.Data[PrefixField] = demoName
	}
	return nil
}

func NewDemoHook(levels ...logrus.Level) *DemoHook {
	hook := DemoHook{
		Field:  DemoField,
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// SetDemoName binds name to the calling goroutine, the returned func clears it
func SetDemoName(name string) func() {
	gls.ResetGls(gls.GoID(), map[interface{}]interface{}{})
	gls.Set(DemoField, name)
	return func() {
		gls.DeleteGls(gls.GoID())
	}
}
