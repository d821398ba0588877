// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/katalvlaran/epinet/degree"
	"github.com/katalvlaran/epinet/neighborhood"
	"github.com/katalvlaran/epinet/stats"
	"github.com/katalvlaran/epinet/tabular"
)

// Configuration keys. Environment variables are EPINET_ plus the key with
// dots replaced by underscores, e.g. EPINET_CI_CONFIDENCE.
const (
	keyConfig          = "config"
	keyLogLevel        = "log.level"
	keyOutputFormat    = "output.format"
	keyCIConfidence    = "ci.confidence"
	keyRadius          = "neighborhood.radius"
	keyDegreeSeed      = "degree.seed"
	keyInputDelimiter  = "input.delimiter"
	keyInputComment    = "input.comment"
	keyInputHeader     = "input.header"
	envPrefix          = "EPINET"
	formatText         = "text"
	formatYAML         = "yaml"
	defaultLogLevel    = "info"
	defaultDelimiter   = ","
	defaultCommentChar = "#"
)

// errConfig marks a configuration value that cannot be used.
var errConfig = errors.New("epinet: invalid configuration")

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyOutputFormat, formatText)
	v.SetDefault(keyCIConfidence, stats.DefaultConfidence)
	v.SetDefault(keyRadius, neighborhood.DefaultRadius)
	v.SetDefault(keyInputDelimiter, defaultDelimiter)
	v.SetDefault(keyInputComment, defaultCommentChar)
	v.SetDefault(keyInputHeader, false)

	return v
}

// load reads the optional YAML file named by the config key.
func load(v *viper.Viper) error {
	path := v.GetString(keyConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	return nil
}

func newLogger(v *viper.Viper, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return nil, fmt.Errorf("%s=%q: %w", keyLogLevel, v.GetString(keyLogLevel), errConfig)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func outputFormat(v *viper.Viper) (string, error) {
	switch f := strings.ToLower(v.GetString(keyOutputFormat)); f {
	case formatText, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%s=%q (want text or yaml): %w", keyOutputFormat, f, errConfig)
	}
}

// readerOptions maps the input.* keys to tabular options. The delimiter
// accepts a single character or the words "tab" and "space".
func readerOptions(v *viper.Viper) ([]tabular.Option, error) {
	delim, err := singleRune(keyInputDelimiter, v.GetString(keyInputDelimiter))
	if err != nil {
		return nil, err
	}
	opts := []tabular.Option{
		tabular.WithDelimiter(delim),
		tabular.WithHeader(v.GetBool(keyInputHeader)),
	}

	comment := v.GetString(keyInputComment)
	if comment == "" {
		return append(opts, tabular.WithComment(0)), nil
	}
	c, err := singleRune(keyInputComment, comment)
	if err != nil {
		return nil, err
	}

	return append(opts, tabular.WithComment(c)), nil
}

func singleRune(key, s string) (rune, error) {
	switch strings.ToLower(s) {
	case "tab", `\t`:
		return '\t', nil
	case "space":
		return ' ', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("%s=%q (want one character): %w", key, s, errConfig)
	}

	return r, nil
}

// degreeOptions seeds Approximate when degree.seed is configured.
func degreeOptions(v *viper.Viper) []degree.Option {
	if !v.IsSet(keyDegreeSeed) {
		return nil
	}

	return []degree.Option{degree.WithSeed(v.GetInt64(keyDegreeSeed))}
}
