package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"SetKV/internal/command"
	"SetKV/internal/help"
	"SetKV/internal/shell"
	"SetKV/internal/store"
	"SetKV/pkg/logger"
)

type config struct {
	helpFile string
	prompt   string
	logLevel string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:           "setkv",
		Short:         "Interactive in-memory store of string sets",
		Long:          "setkv reads commands such as ADD, REMOVE and MEMBERS from standard input and keeps a volatile mapping from keys to sets of members.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg, in, out, errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.StringVar(&cfg.helpFile, "help-file", "", "read HELP text from this file instead of the built-in text")
	flags.StringVar(&cfg.prompt, "prompt", "> ", "prompt printed before each command")
	flags.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	return cmd
}

func run(ctx context.Context, cfg *config, in io.Reader, out, errOut io.Writer) error {
	level, err := logger.ParseLevel(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.Init(level, nil)
	log := logger.GetLogger()
	defer func() { _ = logger.Sync() }()

	helpText := help.Embedded()
	if cfg.helpFile != "" {
		helpText = help.File(cfg.helpFile)
	}

	interp := command.New(store.New(),
		command.WithOutput(out),
		command.WithErrOutput(errOut),
		command.WithHelp(helpText),
		command.WithLogger(log),
	)

	log.Info("starting session", zap.String("helpFile", cfg.helpFile))
	return shell.Run(ctx, in, out, interp,
		shell.WithPrompt(cfg.prompt),
		shell.WithLogger(log),
	)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// shell 会阻塞在 stdin 上，收到中断信号时直接退出进程
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
		fmt.Fprintln(os.Stdout)
		_ = logger.Sync()
		os.Exit(0)
	}()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
