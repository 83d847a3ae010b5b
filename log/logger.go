/*
 *
 * scene - lifecycle-bound browser handles for Go tests
 * Copyright (C) 2021 Nascent Digital
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package log wraps logrus with per-category filtering.
package log

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nascentdigital/scene/env"
)

// Logger writes category tagged entries through logrus.
type Logger struct {
	*logrus.Logger

	mu             sync.Mutex
	lastLogCall    int64
	categoryFilter *regexp.Regexp
}

// NullLogger returns a logger that discards everything.
func NullLogger() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log, false, nil)
}

// New returns a Logger backed by logger. debug raises the level to debug
// and categoryFilter, when not nil, drops entries whose category does not
// match it.
func New(logger *logrus.Logger, debug bool, categoryFilter *regexp.Regexp) *Logger {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return &Logger{
		Logger:         logger,
		categoryFilter: categoryFilter,
	}
}

// NewFromEnv builds a stderr logger configured by the SCENE_DEBUG and
// SCENE_LOG_CATEGORY_FILTER environment variables.
func NewFromEnv(lookup env.LookupFunc) (*Logger, error) {
	var (
		debug  bool
		filter *regexp.Regexp
	)
	if v, ok := lookup(env.Debug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", env.Debug, err)
		}
		debug = b
	}
	if v, ok := lookup(env.LogCategoryFilter); ok && v != "" {
		re, err := regexp.Compile(v)
		if err != nil {
			return nil, fmt.Errorf("compiling %s: %w", env.LogCategoryFilter, err)
		}
		filter = re
	}

	return New(logrus.New(), debug, filter), nil
}

// Tracef logs a trace message.
func (l *Logger) Tracef(category string, msg string, args ...interface{}) {
	l.Logf(logrus.TraceLevel, category, msg, args...)
}

// Debugf logs a debug message.
func (l *Logger) Debugf(category string, msg string, args ...interface{}) {
	l.Logf(logrus.DebugLevel, category, msg, args...)
}

// Errorf logs an error message.
func (l *Logger) Errorf(category string, msg string, args ...interface{}) {
	l.Logf(logrus.ErrorLevel, category, msg, args...)
}

// Infof logs an info message.
func (l *Logger) Infof(category string, msg string, args ...interface{}) {
	l.Logf(logrus.InfoLevel, category, msg, args...)
}

// Warnf logs a warning message.
func (l *Logger) Warnf(category string, msg string, args ...interface{}) {
	l.Logf(logrus.WarnLevel, category, msg, args...)
}

// Logf logs a message at level, tagged with category and the time elapsed
// since the previous entry.
func (l *Logger) Logf(level logrus.Level, category string, msg string, args ...interface{}) {
	if l == nil {
		return
	}
	// don't log if the current log level isn't in the required level.
	if l.GetLevel() < level {
		return
	}
	if l.categoryFilter != nil && !l.categoryFilter.MatchString(category) {
		return
	}

	l.mu.Lock()
	now := time.Now().UnixNano() / int64(time.Millisecond)
	elapsed := now - l.lastLogCall
	if l.lastLogCall == 0 {
		elapsed = 0
	}
	l.lastLogCall = now
	l.mu.Unlock()

	l.WithFields(logrus.Fields{
		"category": category,
		"elapsed":  fmt.Sprintf("%d ms", elapsed),
	}).Logf(level, msg, args...)
}

// DebugMode returns true if the logger level is set to Debug or higher.
func (l *Logger) DebugMode() bool {
	return l.GetLevel() >= logrus.DebugLevel
}

// SetLevel sets the logger level from a level string.
func (l *Logger) SetLevel(level string) error {
	pl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.Logger.SetLevel(pl)
	return nil
}
