package main

import (
	"fmt"
	"io"
	"os"

	"bookshelf/internal/book"
	"bookshelf/internal/cli"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	loadEnvFiles()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookshelf",
		Short: "Interactive inventory of a small, fixed-size book shelf",
		Long: `bookshelf keeps a handful of book records in memory and lets you add,
list, search, update and delete them from a numbered menu.

Nothing is saved: the shelf starts empty (or with --seed samples) and is
discarded when you choose Exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runShelf,
	}

	cmd.Flags().String("capacity", "", "maximum number of books on the shelf (env "+envCapacity+", default 5)")
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging on stderr")
	cmd.Flags().Bool("seed", false, "start with sample books on the shelf")
	return cmd
}

func runShelf(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	svc := book.NewService(book.NewMemoryRepository(cfg.Capacity), logger.Named("book"))
	if cfg.Seed {
		n, err := svc.Seed(ctx, book.SeedData())
		if err != nil {
			return fmt.Errorf("seed shelf: %w", err)
		}
		logger.Debug("shelf seeded", zap.Int("books", n))
	}

	loop := cli.NewLoop(svc, cmd.InOrStdin(), cmd.OutOrStdout(), logger.Named("cli"))
	logger.Debug("starting session", zap.String("session_id", loop.SessionID()), zap.Int("capacity", cfg.Capacity))
	return loop.Run(ctx)
}

// newLogger builds a console logger writing to w, the command's error stream.
func newLogger(cfg config, w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(cfg.LogLevel))
	return zap.New(core, zap.AddCaller())
}
