package fiberlog

import "github.com/sirupsen/logrus"

// Config настройки логирования запросов api
type Config struct {
	// Logger выделенный логгер, nil означает стандартный logrus
	Logger *logrus.Logger
	// Tags список полей, попадающих в запись лога
	Tags []string
}

// ConfigDefault применяется когда конфигурацию не передали явно
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
