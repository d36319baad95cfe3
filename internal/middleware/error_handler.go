package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// reqLogger returns the logger RequestID attached to the request, or the
// global one when the chain runs without it.
func reqLogger(c *gin.Context) *zerolog.Logger {
	if l := zerolog.Ctx(c.Request.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}

// ErrorHandler renders errors a handler attached with c.Error and did not
// answer itself. The client gets the generic 500 envelope; the error chain
// only goes to the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ev := reqLogger(c).Error().
			Str("method", c.Request.Method).
			Str("route", c.FullPath())
		if len(c.Errors) > 1 {
			ev = ev.Strs("errors", c.Errors.Errors())
		}
		ev.Err(c.Errors.Last().Err).Msg("request failed")

		c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.Internal())
	}
}

// Recovery converts panics into 500 responses.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				reqLogger(c).Error().
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.Internal())
			}
		}()
		c.Next()
	}
}

// Logger writes one access-log line per request, at warn for 4xx and error
// for 5xx.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ev := reqLogger(c).Info()
		switch {
		case status >= http.StatusInternalServerError:
			ev = reqLogger(c).Error()
		case status >= http.StatusBadRequest:
			ev = reqLogger(c).Warn()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
