package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// Init 初始化日志器，只有第一次调用生效。
// 标准输出留给交互会话，日志默认写到 stderr。
func Init(level zapcore.Level, out zapcore.WriteSyncer) {
	once.Do(func() {
		if out == nil {
			out = zapcore.Lock(os.Stderr)
		}
		logger = zap.New(newCore(level, out), zap.AddCaller())
	})
}

func newCore(level zapcore.Level, out zapcore.WriteSyncer) zapcore.Core {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), out, zap.NewAtomicLevelAt(level))
}

// ParseLevel 解析 debug/info/warn/error 等级别名
func ParseLevel(text string) (zapcore.Level, error) {
	return zapcore.ParseLevel(text)
}

// GetLogger 获取日志器实例，未初始化时使用 warn 级别
func GetLogger() *zap.Logger {
	if logger == nil {
		Init(zapcore.WarnLevel, nil)
	}
	return logger
}

// Sync 刷新缓冲的日志
func Sync() error {
	return GetLogger().Sync()
}
