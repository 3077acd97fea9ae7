package main

import (
	"fmt"
	"os"

	"github.com/automoto/pongview/cmd"
	cfg "github.com/automoto/pongview/config"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "pongview"
	app.Usage = "render a live or recorded pong board"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.StringFlag{
			Name:  "log",
			Usage: "also write logs to this file, rotated",
		},
		cli.BoolFlag{
			Name:  "mute",
			Usage: "start with sound effects muted",
		},
	}

	latency := cli.Float64Flag{
		Name:  "latency",
		Value: cfg.Debug.LatencyMillis,
		Usage: "hold every event back by this many ms",
	}

	app.Commands = []cli.Command{
		{
			Name:  "play",
			Usage: "connect to a live channel and render its board",
			Description: `
Dial the channel websocket and render the board it mounts. The connection is
retried until the window is closed; a lost connection unmounts the board.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "addr",
					Value: cfg.Network.Address,
					Usage: "channel host:port",
				},
				cli.StringFlag{
					Name:  "path",
					Value: cfg.Network.Path,
					Usage: "channel websocket path",
				},
				cli.StringFlag{
					Name:  "record, r",
					Usage: "write every received event to this replay file",
				},
				latency,
			},
			Action: cmd.Play,
		},
		{
			Name:      "replay",
			Usage:     "render a recorded channel",
			ArgsUsage: "recording.jsonl",
			Flags: []cli.Flag{
				latency,
			},
			Action: cmd.Replay,
		},
		{
			Name:      "inspect",
			Usage:     "print event statistics of a recording",
			ArgsUsage: "recording.jsonl",
			Action:    cmd.Inspect,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
