// Package logger 统一日志初始化
// 使用 zerolog 替代标准库 log，按配置控制日志级别和输出格式
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config 日志配置
type Config struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, text
}

// Init 初始化全局日志器
func Init(config Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	level := parseLevel(config.Level)
	zerolog.SetGlobalLevel(level)

	// text 格式使用控制台输出，便于本地调试
	if strings.ToLower(config.Format) == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
