/*
Copyright 2024 The codecheck Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger

import (
	"sync"

	"github.com/codecheck/codecheck/lib/errno"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var moduleNames = map[errno.Module]string{
	errno.ModuleUnknown:  "unknown",
	errno.ModuleCompress: "compress",
	errno.ModuleProbe:    "probe",
	errno.ModuleConfig:   "config",
	errno.ModuleReport:   "report",
}

type Logger struct {
	module errno.Module
	fields []zap.Field
}

var loggerPool sync.Map

func NewLogger(module errno.Module) *Logger {
	l, ok := loggerPool.Load(module)
	if ok {
		log, _ := l.(*Logger)
		return log
	}
	// ignore concurrent situation, repeat store same module logger
	log := &Logger{module: module}
	loggerPool.Store(module, log)
	return log
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		module: l.module,
		fields: append(append([]zap.Field{}, l.fields...), fields...),
	}
}

func (l *Logger) SetModule(m errno.Module) {
	l.module = m
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	logger.WithOptions(zap.AddCallerSkip(1)).Error(msg, l.rewriteFields(fields)...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	logger.WithOptions(zap.AddCallerSkip(1)).Info(msg, l.rewriteFields(fields)...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	logger.WithOptions(zap.AddCallerSkip(1)).Warn(msg, l.rewriteFields(fields)...)
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	if level > zapcore.DebugLevel {
		return
	}
	logger.WithOptions(zap.AddCallerSkip(1)).Debug(msg, l.rewriteFields(fields)...)
}

func (l *Logger) GetZapLogger() *zap.Logger {
	return logger
}

func (l *Logger) IsDebugLevel() bool {
	return level == zap.DebugLevel
}

func (l *Logger) rewriteFields(fields []zap.Field) []zap.Field {
	name, ok := moduleNames[l.module]
	if !ok {
		name = moduleNames[errno.ModuleUnknown]
	}

	out := make([]zap.Field, 0, len(l.fields)+len(fields)+1)
	out = append(out, zap.String("module", name))
	out = append(out, l.fields...)
	out = append(out, fields...)
	return out
}
