package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nascentdigital/scene/engine"
	"github.com/nascentdigital/scene/env"
	"github.com/nascentdigital/scene/log"
	"github.com/nascentdigital/scene/storage"
)

type cliConfig struct {
	configPath   string
	endpointFile string
	browser      string
	install      bool
	command      []string
}

func parseFlags(args []string, lookup env.LookupFunc) (cliConfig, error) {
	var cfg cliConfig

	fs := flag.NewFlagSet("scene-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.configPath, "config", "", "configuration file (default: SCENE_CONFIG or scene.config.js, scene.yaml, scene.yml, scene.json)")
	fs.StringVar(&cfg.endpointFile, "endpoint-file", storage.DefaultEndpointFile(lookup), "file the browser server endpoint is written to")
	fs.StringVar(&cfg.browser, "browser", engine.ResolveBrowserType(lookup, log.NullLogger()), "browser engine: chromium, firefox or webkit")
	fs.BoolVar(&cfg.install, "install", false, "install the playwright driver and browsers first")
	fs.Usage = func() {
		fs.SetOutput(os.Stderr)
		fmt.Fprintln(os.Stderr, "usage: scene-server [flags] [-- command args...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
		}
		return cfg, err
	}
	if _, err := engine.ParseBrowserType(cfg.browser); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		cfg.command = fs.Args()
	}

	return cfg, nil
}
