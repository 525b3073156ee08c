// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonable

import "log/slog"

type options struct {
	log      *slog.Logger
	extended bool
}

// An Option configures a Doc.
type Option func(*options)

// WithLogger sets the logger for the Doc. Dropped writes are logged at debug
// level, and containers left open by Save are logged as warnings. If nil is
// passed, log output is discarded, which is also the default.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithExtendedSyntax enables or disables JWCC input. When enabled, FromJSON
// accepts comments and trailing commas in addition to standard JSON.
// It is disabled by default.
func WithExtendedSyntax(ok bool) Option {
	return func(o *options) { o.extended = ok }
}

func (o *options) logger() *slog.Logger {
	if o.log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.log
}
