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
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"fillmore-labs.com/vuesanitizer/analyzer/level"
	"fillmore-labs.com/vuesanitizer/internal/config"
	"fillmore-labs.com/vuesanitizer/internal/run"
)

const (
	configBaseName = ".vuesanitizer"
	configFileName = configBaseName + ".yaml"
	envPrefix      = "VUESANITIZER"

	parallelKey  = "parallel"
	fixKey       = "fix"
	formatKey    = "format"
	generatedKey = "generated"
	globalsKey   = "globals"
	hooksKey     = "effect-hooks"
	rulesPrefix  = "rules."

	complexityKey      = "thresholds.complexity"
	largeStoreKey      = "thresholds.large-store"
	mapperProximityKey = "thresholds.mapper-proximity"
	mutationNameKey    = "thresholds.mutation-name"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max-size"
	logMaxBackupsKey = "log.max-backups"
	logMaxAgeKey     = "log.max-age"
	logCompressKey   = "log.compress"

	defaultFormat        = "text"
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
)

// newViper returns a configuration registry reading the environment and,
// when present, the configuration file.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	thresholds := config.DefaultThresholds()

	v.SetDefault(parallelKey, 0)
	v.SetDefault(fixKey, false)
	v.SetDefault(formatKey, defaultFormat)
	v.SetDefault(generatedKey, false)
	v.SetDefault(globalsKey, []string{})
	v.SetDefault(hooksKey, run.DefaultOptions().EffectHooks)

	for r := range config.AllRules() {
		v.SetDefault(rulesPrefix+r.String(), level.SeverityWarn.String())
	}

	v.SetDefault(complexityKey, thresholds.Complexity)
	v.SetDefault(largeStoreKey, thresholds.LargeStore)
	v.SetDefault(mapperProximityKey, thresholds.MapperProximity)
	v.SetDefault(mutationNameKey, config.DefaultMutationName)

	v.SetDefault(logFilenameKey, "")
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, false)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, true)

	return v
}

// readConfig reads the configuration file. An explicitly named file must
// exist, the default file is optional.
func readConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("can't read config %s: %w", file, err)
		}

		return nil
	}

	v.SetConfigName(configBaseName)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("can't read config %s: %w", configFileName, err)
	}

	return nil
}

// settings is the resolved configuration of a check run.
type settings struct {
	Parallel   int
	Fix        bool
	Format     format
	Severities [config.NumRules]level.Severity
	Options    *run.Options
}

// LogValue implements [slog.LogValuer].
func (s settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("parallel", s.Parallel),
		slog.Bool("fix", s.Fix),
		slog.String("format", s.Format.String()),
		slog.Any("options", s.Options),
	)
}

// loadSettings resolves the configuration registry into [settings].
func loadSettings(v *viper.Viper) (settings, error) {
	s := settings{
		Parallel: v.GetInt(parallelKey),
		Fix:      v.GetBool(fixKey),
		Options:  run.DefaultOptions(),
	}

	if err := s.Format.UnmarshalText([]byte(v.GetString(formatKey))); err != nil {
		return s, err
	}

	o := s.Options
	o.Rules = config.Rules{}

	for r := range config.AllRules() {
		key := rulesPrefix + r.String()
		if err := s.Severities[r].UnmarshalText([]byte(v.GetString(key))); err != nil {
			return s, fmt.Errorf("%s: %w", key, err)
		}

		o.Rules.Set(r.Flag(), s.Severities[r].Enabled())
	}

	o.Behavior.Set(config.IncludeGenerated, v.GetBool(generatedKey))
	o.Behavior.Set(config.SuggestFixes, true)

	o.Thresholds.Complexity = v.GetInt(complexityKey)
	o.Thresholds.LargeStore = v.GetInt(largeStoreKey)
	o.Thresholds.MapperProximity = v.GetInt(mapperProximityKey)

	o.Thresholds.MutationName = nil
	if pattern := v.GetString(mutationNameKey); pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return s, fmt.Errorf("%s: %w", mutationNameKey, err)
		}

		o.Thresholds.MutationName = re
	}

	o.Globals = v.GetStringSlice(globalsKey)
	o.EffectHooks = v.GetStringSlice(hooksKey)

	return s, nil
}
