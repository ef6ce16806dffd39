package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goserg/fantasygoat/internal/cli"
	"github.com/goserg/fantasygoat/internal/config"
	"github.com/goserg/fantasygoat/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var demo bool
	flag.StringVar(&configPath, "config", "configs/league.toml", "path to league config")
	flag.BoolVar(&demo, "demo", false, "seed the sample dataset before running the command")
	flag.Parse()

	// The default config file is optional; a custom path must exist.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if flagWasSet("config") {
			return fmt.Errorf("config file %s not found", configPath)
		}
		configPath = ""
	}
	cfg, err := config.New(configPath)
	if err != nil {
		return err
	}
	if cfg.App.Debug {
		cfg.App.LogLevel = "debug"
	}
	log, err := logger.New(cfg.App.LogLevel)
	if err != nil {
		return err
	}

	app, err := cli.New(cfg, log)
	if err != nil {
		return err
	}
	if demo {
		if err := app.SeedDemo(); err != nil {
			return err
		}
	}
	return app.Run(flag.Args())
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
