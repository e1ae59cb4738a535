package cmd

import (
	"github.com/achilleasa/sunhouse/log"
	"github.com/urfave/cli"
)

var logger = log.New("sunhouse")

func setupLogging(ctx *cli.Context) error {
	if name := ctx.GlobalString("log-level"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	logger.Debugf("log level: %s", log.GetLevel())
	return nil
}
