// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package log

import (
	"context"
	"math"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kaleido-io/ledger-gateway/internal/confutil"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var (
	rootLogger = logrus.NewEntry(logrus.StandardLogger())

	// L accesses the current logger from the context
	L = loggerFromContext

	initAtLeastOnce atomic.Bool
)

type (
	ctxLogKey struct{}
)

func InitConfig(conf *gwconf.LogConfig) {
	initAtLeastOnce.Store(true) // must store before SetLevel

	SetLevel(confutil.StringNotEmpty(conf.Level, *gwconf.LogDefaults.Level))

	switch confutil.StringNotEmpty(conf.Output, *gwconf.LogDefaults.Output) {
	case "file":
		filename := confutil.StringNotEmpty(conf.File.Filename, *gwconf.LogDefaults.File.Filename)
		rootLogger.Infof("Logs diverted to %s", filename)
		maxSizeBytes := confutil.ByteSize(conf.File.MaxSize, 0, *gwconf.LogDefaults.File.MaxSize)
		maxAgeDuration := confutil.DurationMin(conf.File.MaxAge, 0, *gwconf.LogDefaults.File.MaxAge)
		logrus.SetOutput(&lumberjack.Logger{
			Filename:   filename,
			MaxSize:    int(math.Ceil(float64(maxSizeBytes) / 1024 / 1024)), /* round up in megabytes */
			MaxBackups: confutil.IntMin(conf.File.MaxBackups, 0, *gwconf.LogDefaults.File.MaxBackups),
			MaxAge:     int(math.Ceil(float64(maxAgeDuration) / float64(time.Hour) / 24)), /* round up in days */
			Compress:   confutil.Bool(conf.File.Compress, *gwconf.LogDefaults.File.Compress),
		})
	case "stdout":
		logrus.SetOutput(os.Stdout)
	default:
		logrus.SetOutput(os.Stderr)
	}

	setFormatting(&formatting{
		Format:             confutil.StringNotEmpty(conf.Format, *gwconf.LogDefaults.Format),
		DisableColor:       confutil.Bool(conf.DisableColor, *gwconf.LogDefaults.DisableColor),
		ForceColor:         confutil.Bool(conf.ForceColor, *gwconf.LogDefaults.ForceColor),
		TimestampFormat:    confutil.StringNotEmpty(conf.TimeFormat, *gwconf.LogDefaults.TimeFormat),
		UTC:                confutil.Bool(conf.UTC, *gwconf.LogDefaults.UTC),
		JSONTimestampField: confutil.StringNotEmpty(conf.JSON.TimestampField, *gwconf.LogDefaults.JSON.TimestampField),
		JSONLevelField:     confutil.StringNotEmpty(conf.JSON.LevelField, *gwconf.LogDefaults.JSON.LevelField),
		JSONMessageField:   confutil.StringNotEmpty(conf.JSON.MessageField, *gwconf.LogDefaults.JSON.MessageField),
		JSONFuncField:      confutil.StringNotEmpty(conf.JSON.FuncField, *gwconf.LogDefaults.JSON.FuncField),
		JSONFileField:      confutil.StringNotEmpty(conf.JSON.FileField, *gwconf.LogDefaults.JSON.FileField),
	})
}

func IsDebugEnabled() bool {
	return logrus.IsLevelEnabled(logrus.DebugLevel)
}

// EnsureInit makes sure unit tests and other embedded uses get a sensibly configured logger
func EnsureInit() {
	if !initAtLeastOnce.Load() {
		InitConfig(&gwconf.LogConfig{})
	}
}

// WithLogger adds the specified logger to the context
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	EnsureInit()
	return context.WithValue(ctx, ctxLogKey{}, logger)
}

// WithLogField adds the specified field to the logger in the context
func WithLogField(ctx context.Context, key, value string) context.Context {
	EnsureInit()
	if len(value) > 61 {
		value = value[0:61] + "..."
	}
	return WithLogger(ctx, loggerFromContext(ctx).WithField(key, value))
}

func loggerFromContext(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(ctxLogKey{})
	if logger == nil {
		return rootLogger
	}
	return logger.(*logrus.Entry)
}

func GetLevel() string {
	switch logrus.GetLevel() {
	case logrus.ErrorLevel:
		return "error"
	case logrus.WarnLevel:
		return "warn"
	case logrus.DebugLevel:
		return "debug"
	case logrus.TraceLevel:
		return "trace"
	default:
		return "info"
	}
}

func SetLevel(level string) {
	var l logrus.Level
	switch strings.ToLower(level) {
	case "error":
		l = logrus.ErrorLevel
	case "warn", "warning":
		l = logrus.WarnLevel
	case "debug":
		l = logrus.DebugLevel
	case "trace":
		l = logrus.TraceLevel
	default:
		l = logrus.InfoLevel
	}
	logrus.SetLevel(l)
}

type formatting struct {
	Format             string
	DisableColor       bool
	ForceColor         bool
	TimestampFormat    string
	UTC                bool
	JSONTimestampField string
	JSONLevelField     string
	JSONMessageField   string
	JSONFuncField      string
	JSONFileField      string
}

type utcFormat struct {
	f logrus.Formatter
}

func (utc *utcFormat) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.UTC()
	return utc.f.Format(e)
}

func setFormatting(format *formatting) {
	var formatter logrus.Formatter
	reportCaller := false
	switch format.Format {
	case "json":
		formatter = &logrus.JSONFormatter{
			TimestampFormat: format.TimestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  format.JSONTimestampField,
				logrus.FieldKeyLevel: format.JSONLevelField,
				logrus.FieldKeyMsg:   format.JSONMessageField,
				logrus.FieldKeyFunc:  format.JSONFuncField,
				logrus.FieldKeyFile:  format.JSONFileField,
			},
		}
	case "detailed":
		formatter = &logrus.TextFormatter{
			DisableColors:   format.DisableColor,
			ForceColors:     format.ForceColor,
			TimestampFormat: format.TimestampFormat,
			FullTimestamp:   true,
		}
		reportCaller = true
	default:
		formatter = &prefixed.TextFormatter{
			DisableColors:   format.DisableColor,
			ForceColors:     format.ForceColor,
			TimestampFormat: format.TimestampFormat,
			ForceFormatting: true,
			FullTimestamp:   true,
		}
	}
	if format.UTC {
		formatter = &utcFormat{f: formatter}
	}
	logrus.SetReportCaller(reportCaller)
	logrus.SetFormatter(formatter)
}
