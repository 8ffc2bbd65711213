package main

import (
	"flag"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"list_exercises/scenario"
)

var configPath string
var verbose bool

func main() {
	flag.StringVar(&configPath, "config", "", "path to a TOML scenario (default: the built-in exercises)")
	flag.BoolVar(&verbose, "v", false, "log every step")
	flag.Parse()

	logrus.SetLevel(logrus.InfoLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	s := scenario.Default()
	if configPath != "" {
		var err error
		s, err = scenario.Load(configPath)
		if err != nil {
			logrus.Fatalf("unable to load scenario: %s", err)
		}
		logrus.Infof("loaded %d lists from %s", len(s.Lists), configPath)
	}

	if err := scenario.Run(os.Stdout, s); err != nil {
		logrus.Fatalf("scenario failed: %s", err)
	}
}
