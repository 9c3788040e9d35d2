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
	"testing"

	"github.com/codecheck/codecheck/lib/config"
	"github.com/codecheck/codecheck/lib/errno"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestModuleField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	old := logger
	SetLogger(zap.New(core))
	defer SetLogger(old)

	lg := NewLogger(errno.ModuleCompress)
	lg.Info("bound computed", zap.Int("bound", 32))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "bound computed", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "compress", fields["module"])
	require.Equal(t, int64(32), fields["bound"])
}

func TestLoggerReuseByModule(t *testing.T) {
	require.Same(t, NewLogger(errno.ModuleProbe), NewLogger(errno.ModuleProbe))
}

func TestSetLevel(t *testing.T) {
	conf := config.NewLogger(config.AppCli)
	conf.Path = t.TempDir()
	InitLogger(conf)

	require.NoError(t, SetLevel("debug"))
	require.Error(t, SetLevel("chatty"))
}
