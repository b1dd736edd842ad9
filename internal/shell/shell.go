// Package shell 交互式读取输入并交给解释器执行。
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Executor 执行一行输入，通常是 *command.Interpreter
type Executor interface {
	Execute(line string) error
}

type Option func(*Options)

type Options struct {
	Prompt string
	Banner []string
	Logger *zap.Logger
}

func defaultOptions() *Options {
	return &Options{
		Prompt: "> ",
		Banner: []string{
			"To exit, use ctrl-c",
			"Use `HELP` to view commands.",
		},
		Logger: zap.NewNop(),
	}
}

func WithPrompt(prompt string) Option {
	return func(opts *Options) {
		opts.Prompt = prompt
	}
}

// WithBanner 会话开始时输出的文字，nil 表示不输出
func WithBanner(lines ...string) Option {
	return func(opts *Options) {
		opts.Banner = lines
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(opts *Options) {
		opts.Logger = l
	}
}

// Run 在每次读取前输出提示符，逐行执行，直到输入结束或 ctx 被取消
func Run(ctx context.Context, in io.Reader, out io.Writer, exec Executor, opts ...Option) error {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	log := options.Logger.Named("shell")

	for _, line := range options.Banner {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	log.Debug("session started")
	reader := bufio.NewReader(in)
	lines := 0
	for {
		if err := ctx.Err(); err != nil {
			log.Debug("session cancelled", zap.Int("lines", lines))
			return nil
		}
		if _, err := io.WriteString(out, options.Prompt); err != nil {
			return err
		}

		// 不限制行长，最后一行可以没有换行符
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			log.Warn("read input", zap.Error(readErr))
			return readErr
		}
		if line == "" && readErr == io.EOF {
			break
		}
		lines++
		if err := exec.Execute(strings.TrimRight(line, "\r\n")); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	log.Debug("session ended", zap.Int("lines", lines))
	return nil
}
