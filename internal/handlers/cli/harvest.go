package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txharvest/internal/harvest"

	"github.com/urfave/cli/v3"
)

// harvestAction runs one harvest and returns once the dataset is written.
//
// SIGINT and SIGTERM cancel the run: the wallet being processed is abandoned,
// no dataset is written and the responses cached so far are kept.
func harvestAction(svc harvest.Service) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		_, err := svc.Run(ctx)
		return err
	}
}

// runHarvestCommand returns a CLI command that runs a full harvest.
//
// Usage example:
//
//	txharvest run
func runHarvestCommand(svc harvest.Service) *cli.Command {
	return &cli.Command{
		Name:        "run",
		Description: "Fetches normal and internal transactions of every listed wallet, caching each explorer response, and writes the combined dataset.",
		Usage:       "Runs a full harvest. Terminates early on Ctrl+C or termination signals without writing the dataset.",
		Action:      harvestAction(svc),
	}
}
