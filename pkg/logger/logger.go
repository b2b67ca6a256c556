// Package logger 基于logrus的结构化日志
//
// 全局只有一个*logrus.Logger，由Init按配置设置级别、格式与输出位置。
// 请求级别的字段（request_id、trace_id）通过context传递，
// 使用FromContext取出带字段的Entry。
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

var std = logrus.New()

// Config 日志配置
type Config struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

// Init 按配置初始化全局Logger
func Init(cfg Config) error {
	level, err := logrus.ParseLevel(defaultString(cfg.Level, "info"))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	std.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		std.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	default:
		std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006/01/02 15:04:05"})
	}

	out, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	std.SetOutput(out)
	std.SetReportCaller(cfg.EnableCaller)
	return nil
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", output, err)
		}
		return f, nil
	}
}

// L 返回全局Logger
func L() *logrus.Logger {
	return std
}

// WithFields 把字段挂到context上，后续FromContext取出的Entry都会带上
func WithFields(ctx context.Context, fields logrus.Fields) context.Context {
	merged := logrus.Fields{}
	if prev, ok := ctx.Value(ctxKey{}).(logrus.Fields); ok {
		for k, v := range prev {
			merged[k] = v
		}
	}
	for k, v := range fields {
		merged[k] = v
	}
	return context.WithValue(ctx, ctxKey{}, merged)
}

// FromContext 取出带请求字段的Entry
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx == nil {
		return logrus.NewEntry(std)
	}
	entry := std.WithContext(ctx)
	if fields, ok := ctx.Value(ctxKey{}).(logrus.Fields); ok {
		entry = entry.WithFields(fields)
	}
	return entry
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
