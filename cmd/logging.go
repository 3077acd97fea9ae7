package cmd

import (
	cfg "github.com/automoto/pongview/config"
	"github.com/automoto/pongview/logging"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func setupLogging(ctx *cli.Context) *zap.SugaredLogger {
	c := cfg.Log
	c.Verbose = ctx.GlobalBool("v")
	if file := ctx.GlobalString("log"); file != "" {
		c.File = file
	}
	return logging.New(c)
}
