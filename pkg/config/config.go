// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	perrors "github.com/pizzeria/pizza/pkg/errors"
	"github.com/pizzeria/pizza/pkg/serializer"
)

// Keys and defaults.
const (
	KeyLogLevel = "log-level"
	KeyFormat   = "format"
	KeyEmoji    = "emoji"

	DefaultLogLevel = "info"
	DefaultFormat   = string(serializer.FormatText)

	EnvPrefix = "PIZZA"
	FileName  = ".pizza"
)

// Config holds CLI settings.
type Config struct {
	LogLevel string
	Format   serializer.Format
	Emoji    bool
}

// Load reads configuration. When path is empty the file is discovered in the
// home and current directories and may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyEmoji, true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, perrors.WrapWithContext(
				perrors.ErrCodeInvalidRequest,
				"failed to read config file",
				err,
				map[string]any{"path": path},
			)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(FileName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, perrors.Wrap(perrors.ErrCodeInvalidRequest, "failed to read config file", err)
			}
		}
	}

	cfg := &Config{
		LogLevel: v.GetString(KeyLogLevel),
		Format:   serializer.Format(strings.ToLower(v.GetString(KeyFormat))),
		Emoji:    v.GetBool(KeyEmoji),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configured values are supported.
func (c *Config) Validate() error {
	if c.Format.IsUnknown() {
		return perrors.NewWithContext(
			perrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q", c.Format),
			map[string]any{"supported": serializer.SupportedFormats()},
		)
	}
	return nil
}
