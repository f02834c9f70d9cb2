// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// parseSlogLevel parses a level name or a numeric slog level.
func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	switch level := strings.ToLower(strings.TrimSpace(value)); level {
	case "":
		return defaultLevel

	case "debug":
		return slog.LevelDebug

	case "info":
		return slog.LevelInfo

	case "warn", "warning":
		return slog.LevelWarn

	case "error":
		return slog.LevelError

	default:
		if n, err := strconv.Atoi(level); err == nil {
			return slog.Level(n)
		}

		return defaultLevel
	}
}

// newLogger returns a text logger writing to the configured rotating log
// file, or to stderr when no file is configured. Verbose logging is at
// debug level. The returned closer releases the log file.
func newLogger(v *viper.Viper, stderr io.Writer) (*slog.Logger, io.Closer) {
	logLevel := parseSlogLevel(v.GetString(logLevelKey), slog.LevelInfo)
	if v.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	}

	var (
		w      io.Writer = stderr
		closer io.Closer = io.NopCloser(nil)
	)

	if filename := strings.TrimSpace(v.GetString(logFilenameKey)); filename != "" {
		logWriter := &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    v.GetInt(logMaxSizeKey),
			MaxBackups: v.GetInt(logMaxBackupsKey),
			MaxAge:     v.GetInt(logMaxAgeKey),
			Compress:   v.GetBool(logCompressKey),
		}

		w, closer = logWriter, logWriter
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel})

	return slog.New(handler), closer
}
