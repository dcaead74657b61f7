package log

import "context"

type discardLogger struct{}

// Discard returns a Logger that drops everything. Intended for tests.
func Discard() Logger { return discardLogger{} }

func (discardLogger) Debug(context.Context, ...any)           {}
func (discardLogger) Debugf(context.Context, string, ...any)  {}
func (discardLogger) Info(context.Context, ...any)            {}
func (discardLogger) Infof(context.Context, string, ...any)   {}
func (discardLogger) Warn(context.Context, ...any)            {}
func (discardLogger) Warnf(context.Context, string, ...any)   {}
func (discardLogger) Error(context.Context, ...any)           {}
func (discardLogger) Errorf(context.Context, string, ...any)  {}
func (discardLogger) DPanic(context.Context, ...any)          {}
func (discardLogger) DPanicf(context.Context, string, ...any) {}
func (discardLogger) Panic(context.Context, ...any)           {}
func (discardLogger) Panicf(context.Context, string, ...any)  {}
func (discardLogger) Fatal(context.Context, ...any)           {}
func (discardLogger) Fatalf(context.Context, string, ...any)  {}
