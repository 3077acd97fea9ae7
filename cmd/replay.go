package cmd

import (
	"errors"
	"fmt"

	"github.com/automoto/pongview/host"
	"github.com/automoto/pongview/logging"
	"github.com/automoto/pongview/network"
	"github.com/urfave/cli"
)

// Replay renders a recorded channel.
func Replay(ctx *cli.Context) error {
	log := setupLogging(ctx)
	defer logging.Sync(log)

	if ctx.NArg() != 1 {
		return errors.New("missing recording file argument")
	}

	clock := host.NewMonotonicClock()
	replay, err := network.OpenReplay(ctx.Args().First(), clock)
	if err != nil {
		return err
	}
	log.Infow("replaying", "file", ctx.Args().First(), "events", replay.Len())

	return run(ctx, log, gameOptions{
		feed:  network.NewDelayed(replay, ctx.Float64("latency"), clock),
		clock: clock,
		status: func() string {
			if replay.Done() {
				return "replay finished"
			}
			return fmt.Sprintf("replaying %d events", replay.Len())
		},
	})
}
