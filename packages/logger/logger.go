package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"
)

const (
	textHeader = "${time_rfc3339} ${level} ${short_file}:${line}"
	jsonHeader = `{"time":"${time_rfc3339}","level":"${level}","file":"${short_file}","line":"${line}"}`
)

// Config 日志配置
type Config struct {
	Level  string // debug, info, warn, error, off
	Format string // json, text
	Output string // stdout, file
	Path   string // Output 为 file 时的日志文件路径
}

// Setup 按配置初始化全局日志器，返回的 io.Closer 用于关闭日志文件
func Setup(conf Config) (io.Closer, error) {
	var closer io.Closer = nopCloser{}

	switch strings.ToLower(conf.Output) {
	case "", "stdout":
		log.SetOutput(os.Stdout)
	case "file":
		if conf.Path == "" {
			return nil, fmt.Errorf("日志输出为 file 时必须配置 path")
		}
		if err := os.MkdirAll(filepath.Dir(conf.Path), 0o755); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
		f, err := os.OpenFile(conf.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		log.SetOutput(f)
		closer = f
	default:
		return nil, fmt.Errorf("未知的日志输出: %s", conf.Output)
	}

	if strings.ToLower(conf.Format) == "json" {
		log.SetHeader(jsonHeader)
	} else {
		log.SetHeader(textHeader)
	}

	SetLevel(conf.Level)
	return closer, nil
}

// SetLevel 设置日志级别，未知级别回退为 warn
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		log.SetLevel(log.DEBUG)
	case "info":
		log.SetLevel(log.INFO)
	case "warn", "":
		log.SetLevel(log.WARN)
	case "error":
		log.SetLevel(log.ERROR)
	case "off":
		log.SetLevel(log.OFF)
	default:
		log.SetLevel(log.WARN)
		log.Warnf("unknown loglevel: %s . fall-backed to warn", level)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
