package cli

import (
	"context"
	"os"

	"github.com/gabapcia/txharvest/internal/harvest"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the txharvest CLI application.
//
// Invoked without a command it runs a full harvest, so the tool needs no
// arguments. The same harvest is also available as the `run` command.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - svc: The harvest service executed by the root action and the run command.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, svc harvest.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txharvest",
		Description:           "Collects the transaction history of the wallets listed in a CSV file from an Etherscan-compatible explorer.",
		Usage:                 "txharvest [command]",
		Action:                harvestAction(svc),
		Commands: []*cli.Command{
			runHarvestCommand(svc),
		},
	}

	return app.Run(ctx, os.Args)
}
