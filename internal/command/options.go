package command

import (
	"io"
	"os"

	"go.uber.org/zap"

	"SetKV/internal/help"
)

type Option func(*Options)

type Options struct {
	Output    io.Writer
	ErrOutput io.Writer
	Help      help.Provider
	Screen    Screen
	Logger    *zap.Logger
}

func defaultOptions() *Options {
	return &Options{
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
		Help:      help.Embedded(),
		Logger:    zap.NewNop(),
	}
}

func WithOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.Output = w
	}
}

// WithErrOutput 意外错误写到这里，而不是命令输出
func WithErrOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.ErrOutput = w
	}
}

func WithHelp(p help.Provider) Option {
	return func(opts *Options) {
		opts.Help = p
	}
}

// WithScreen 替换 CLS 的实现，默认向输出写 ANSI 清屏序列
func WithScreen(s Screen) Option {
	return func(opts *Options) {
		opts.Screen = s
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(opts *Options) {
		opts.Logger = l
	}
}
