package main

import (
	"os"

	"github.com/op/go-logging"
	"github.com/shini4i/git-lfs-fetch/cmd/git-lfs-fetch/command"
	"github.com/shini4i/git-lfs-fetch/internal/app"
)

const loggerName = "git-lfs-fetch"

var (
	version = "local"
	log     = logging.MustGetLogger(loggerName)
	format  = logging.MustStringFormatter(`%{message}`)
)

func initLogging(debug bool) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format)
	leveled := logging.AddModuleLevel(backend)

	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}

	logging.SetBackend(leveled)
}

func newRunner(cfg app.Config) (command.Runner, error) {
	runner, err := app.New(cfg, app.Dependencies{Logger: log})
	if err != nil {
		return nil, err
	}
	return runner, nil
}

func main() {
	opts := command.Options{
		Version:     version,
		NewRunner:   newRunner,
		InitLogging: initLogging,
	}

	if err := command.Execute(opts, nil); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
