// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import (
	"io"

	"github.com/lthibault/log"
	"github.com/sirupsen/logrus"
)

// Option configures a [Registry].
type Option func(*Registry)

// WithLogger sets the registry's logger.
// If l == nil, a default logger that reports warnings and errors is used.
func WithLogger(l log.Logger) Option {
	if l == nil {
		l = log.New(log.WithLevel(log.WarnLevel))
	}

	return func(r *Registry) {
		r.log = l
	}
}

// WithLogLevel sets the level of the registry's logger: "trace", "debug",
// "info", "warn", "error" or "fatal". An unknown level selects "warn". If
// w != nil, entries go to w. It combines with [WithLogFormat] in either
// order and replaces a logger set by an earlier [WithLogger].
func WithLogLevel(level string, w io.Writer) Option {
	var lvl = log.WarnLevel
	switch level {
	case "trace", "t":
		lvl = log.TraceLevel
	case "debug", "d":
		lvl = log.DebugLevel
	case "info", "i":
		lvl = log.InfoLevel
	case "error", "err", "e":
		lvl = log.ErrorLevel
	case "fatal", "f":
		lvl = log.FatalLevel
	}

	return func(r *Registry) {
		r.logCfg.level = lvl
		r.logCfg.setWriter(w)
		r.log = r.logCfg.logger()
	}
}

// WithLogFormat sets the format of the registry's logger: "text" (default)
// or "json". If w != nil, entries go to w. It combines with [WithLogLevel]
// in either order and replaces a logger set by an earlier [WithLogger].
func WithLogFormat(format string, w io.Writer) Option {
	var f logrus.Formatter
	switch format {
	case "json":
		f = &logrus.JSONFormatter{}
	default:
		f = new(logrus.TextFormatter)
	}

	return func(r *Registry) {
		r.logCfg.formatter = f
		r.logCfg.setWriter(w)
		r.log = r.logCfg.logger()
	}
}

// logConfig accumulates WithLogLevel and WithLogFormat.
type logConfig struct {
	level     log.Level
	formatter logrus.Formatter
	writer    io.Writer
}

func (c *logConfig) setWriter(w io.Writer) {
	if w != nil {
		c.writer = w
	}
}

func (c *logConfig) logger() log.Logger {
	opts := []log.Option{log.WithLevel(c.level)}
	if c.formatter != nil {
		opts = append(opts, log.WithFormatter(c.formatter))
	}
	if c.writer != nil {
		opts = append(opts, log.WithWriter(c.writer))
	}
	return log.New(opts...)
}

// WithStrict makes overwriting an occupied slot panic with an
// [*OverwriteError] instead of dropping the previous payload.
func WithStrict(strict bool) Option {
	return func(r *Registry) {
		r.strict = strict
	}
}

func withDefaults(opts []Option) []Option {
	return append([]Option{
		WithLogger(nil),
		WithStrict(false),
	}, opts...)
}
