package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "line-server <address> <file>",
		Short: "Serve single lines of a text file over a plain-text TCP protocol",
		Long: `line-server binds <address> and answers GET <n> requests with the
n-th line of <file>. QUIT closes the requesting connection; SHUTDOWN from
any client (or SIGINT/SIGTERM) gracefully stops the whole server.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()

			// An operator signal is a second shutdown trigger,
			// equivalent to a client's SHUTDOWN.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := NewServer(Config{Address: args[0], FilePath: args[1]}, logger.Sugar())

			return srv.Run(ctx)
		},
	}
}
