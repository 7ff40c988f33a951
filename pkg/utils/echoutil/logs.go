package echoutil

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// RequestIdHeader is the header which clients put request ids into.
const RequestIdHeader = "X-Request-Id"

// LogHandlerFunc is a middleware logging requests and responses.
//
// Lines are tagged with the request id sent by the client, when it is present.
func LogHandlerFunc(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		reqId := req.Header.Get(RequestIdHeader)
		if reqId == "" {
			reqId = "-"
		}
		since := time.Now()
		c.Logger().Infof("< [%s] request %s %s", reqId, req.Method, req.URL)

		err := next(c)
		c.Logger().Infof(
			"> [%s] response status = %d (for %s %s) in %v / error = %+v",
			reqId, c.Response().Status, req.Method, req.URL, time.Since(since), err,
		)
		return err
	}
}

var levels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"":      log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// SetLevel sets log level of the server.
//
// loglevel is one of "debug", "info", "warn", "error" or "off". Others fall back to "warn".
func SetLevel(e *echo.Echo, loglevel string) {
	lvl, ok := levels[strings.ToLower(loglevel)]
	if !ok {
		e.Logger.SetLevel(log.WARN)
		e.Logger.Warnf("unknown loglevel: %s . fall-backed to warn", loglevel)
		return
	}
	e.Logger.SetLevel(lvl)
}
