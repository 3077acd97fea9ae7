package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/automoto/pongview/host"
	"github.com/automoto/pongview/logging"
	"github.com/automoto/pongview/network"
	"github.com/urfave/cli"
)

// Play renders the board of a live channel.
func Play(ctx *cli.Context) error {
	log := setupLogging(ctx)
	defer logging.Sync(log)

	clock := host.NewMonotonicClock()
	client := network.NewClient(ctx.String("addr"), ctx.String("path"), network.WithClientLogger(log.Named("client")))
	client.Start(context.Background())
	defer client.Close()

	log.Infow("dialling channel", "url", client.URL())

	var feed network.Feed = client
	if path := ctx.String("record"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create recording: %w", err)
		}
		defer f.Close()

		rec := network.NewRecorder(feed, f, clock)
		defer func() {
			if err := rec.Err(); err != nil {
				log.Warnw("recording incomplete", "file", path, "err", err)
			}
		}()
		feed = rec
	}
	feed = network.NewDelayed(feed, ctx.Float64("latency"), clock)

	return run(ctx, log, gameOptions{
		feed:   feed,
		clock:  clock,
		status: func() string { return client.State().String() },
	})
}
