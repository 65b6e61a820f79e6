package handlers

import "plansvc/internal/shared/logger"

// testLogger discards everything; handler tests assert on responses, not logs.
type testLogger struct{}

func (testLogger) Debug(string, ...interface{})            {}
func (testLogger) Info(string, ...interface{})             {}
func (testLogger) Warn(string, ...interface{})             {}
func (testLogger) Error(string, ...interface{})            {}
func (testLogger) Debugw(string, ...interface{})           {}
func (testLogger) Infow(string, ...interface{})            {}
func (testLogger) Warnw(string, ...interface{})            {}
func (testLogger) Errorw(string, ...interface{})           {}
func (l testLogger) With(...interface{}) logger.Interface  { return l }
func (l testLogger) Named(string) logger.Interface         { return l }
