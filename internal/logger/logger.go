// Package logger quản lý hệ thống logging của ứng dụng: nhiều logger theo
// category (app, audit, error), ghi file có rotation (lumberjack) và/hoặc
// stdout, format theo cấu hình (text/json).
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// loggers map lưu các logger instances theo category
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	// config chứa cấu hình logging
	config *LogConfig

	// hooks giữ các async hook đã tạo để flush khi shutdown
	hooks   []*AsyncHook
	hooksMu sync.Mutex
)

// Init khởi tạo hệ thống logging với cấu hình.
// Truyền nil để dùng cấu hình mặc định (đọc từ environment variables).
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	// Tạo thư mục logs nếu chưa tồn tại
	if cfg.Output != "stdout" {
		if err := os.MkdirAll(cfg.LogPath, 0755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
	}

	return nil
}

// newRotatingWriter tạo writer có rotation cho một file log
func newRotatingWriter(filename string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filepath.Join(config.LogPath, filename),
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
}

// getLogger trả về logger theo category, tạo mới nếu chưa có
func getLogger(category string, filename string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if log, exists := loggers[category]; exists {
		return log
	}

	if config == nil {
		config = DefaultConfig()
	}

	log := logrus.New()

	// Level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// Format
	if config.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}

	// Output: file, stdout hoặc cả hai, ghi bất đồng bộ qua AsyncHook
	// để không block request handling
	var writers []io.Writer
	switch config.Output {
	case "stdout":
		writers = []io.Writer{os.Stdout}
	case "file":
		writers = []io.Writer{newRotatingWriter(filename)}
	default: // both
		writers = []io.Writer{newRotatingWriter(filename), os.Stdout}
	}

	hook := NewAsyncHookWithWriters(writers, 1000)
	log.AddHook(hook)
	// Output mặc định bị discard vì hook đã đảm nhận việc ghi
	log.SetOutput(io.Discard)

	hooksMu.Lock()
	hooks = append(hooks, hook)
	hooksMu.Unlock()

	loggers[category] = log
	return log
}

// GetAppLogger trả về logger cho application logs (lifecycle, nghiệp vụ)
func GetAppLogger() *logrus.Logger {
	if config == nil {
		_ = Init(nil)
	}
	return getLogger("app", config.AppFile)
}

// GetAuditLogger trả về logger cho audit logs (thao tác dữ liệu quan trọng)
func GetAuditLogger() *logrus.Logger {
	if config == nil {
		_ = Init(nil)
	}
	return getLogger("audit", config.AuditFile)
}

// GetErrorLogger trả về logger cho error logs
func GetErrorLogger() *logrus.Logger {
	if config == nil {
		_ = Init(nil)
	}
	return getLogger("error", config.ErrorFile)
}

// Close flush tất cả async hooks. Gọi khi shutdown để không mất log.
func Close() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	for _, h := range hooks {
		h.Close()
	}
	hooks = nil
}
