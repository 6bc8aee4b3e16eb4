package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const requestLogMessage = "запрос api"

// getLogrusFields собирает поля записи лога по настроенным тегам,
// пустые строковые значения опускаются
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields)
	for tag, ft := range ftm {
		value := ft(c, d)
		if strValue, ok := value.(string); ok {
			if strValue != "" {
				fields[tag] = strValue
			}
			continue
		}
		fields[tag] = value
	}
	return fields
}

// New middleware логирования запросов api, preflight запросы не логируются
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) != 0 {
		cfg = config[0]
	}
	d := new(data)
	d.pid = os.Getpid()
	ftm := getFuncTagMap(cfg, d)
	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		if cfg.Logger == nil {
			log.WithFields(getLogrusFields(ftm, c, d)).Info(requestLogMessage)
			return err
		}
		entry := cfg.Logger.WithFields(getLogrusFields(ftm, c, d))
		// ответы с ошибками пишутся уровнем warn, чтобы их было видно в потоке
		if c.Response() != nil && c.Response().StatusCode() >= 300 {
			entry.Warn(requestLogMessage)
		} else {
			entry.Info(requestLogMessage)
		}

		return err
	}
}
