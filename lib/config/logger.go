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

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codecheck/codecheck/lib/errno"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultSubPath is default subpath for storing logs
	DefaultSubPath = "logs"
	// DefaultLevel is the level of logs will be emitted
	DefaultLevel = zap.InfoLevel

	// DefaultMaxSize is the max size of a log file
	DefaultMaxSize = 64 * 1024 * 1024 // 64MB

	// DefaultMaxNum is the max number of log files
	DefaultMaxNum = 16

	// DefaultMaxAge is the max duration a log file can keep
	DefaultMaxAge = 7 // 7days

	// DefaultCompressEnabled is whether the log files are compressed
	DefaultCompressEnabled = true
)

type Logger struct {
	app             App
	Format          string        `toml:"format"`
	Level           zapcore.Level `toml:"level"`
	MaxSize         int64         `toml:"max-size"`
	MaxNum          int           `toml:"max-num"`
	MaxAge          int           `toml:"max-age"`
	CompressEnabled bool          `toml:"compress-enabled"`
	Path            string        `toml:"path"`
}

// NewLogger returns a new instance of Logger config with defaults.
func NewLogger(app App) Logger {
	return Logger{
		app:             app,
		Format:          "auto",
		Level:           DefaultLevel,
		MaxSize:         DefaultMaxSize,
		MaxNum:          DefaultMaxNum,
		MaxAge:          DefaultMaxAge,
		CompressEnabled: DefaultCompressEnabled,
		Path:            filepath.Join(defaultDir(), DefaultSubPath),
	}
}

// Validate validates that the configuration is acceptable.
func (c Logger) Validate() error {
	if c.MaxSize <= 0 {
		return errno.NewError(errno.InternalError, "logger max-size must be positive")
	}

	if c.MaxNum <= 0 {
		return errno.NewError(errno.InternalError, "logger max-num must be positive")
	}

	if c.MaxAge <= 0 {
		return errno.NewError(errno.InternalError, "logger max-age must be positive")
	}

	if c.Path == "" {
		return errno.NewError(errno.EmptyLoggerPath)
	}

	return nil
}

func (c *Logger) SetApp(app App) {
	c.app = app
}

func (c *Logger) GetApp() string {
	return string(c.app)
}

func (c *Logger) NewLumberjackLogger(fileName string) *lumberjack.Logger {
	logName := filepath.Join(c.Path, fmt.Sprintf("%s.log", fileName))

	return &lumberjack.Logger{
		Filename:   logName,
		MaxSize:    rewriteMaxSize(c.MaxSize),
		MaxBackups: c.MaxNum,
		Compress:   c.CompressEnabled,
		MaxAge:     c.MaxAge,
	}
}

func rewriteMaxSize(size int64) int {
	if size < 1024*1024 {
		return 1
	}
	return int(size / (1024 * 1024))
}

func defaultDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".codecheck"
	}
	return filepath.Join(dir, ".codecheck")
}
