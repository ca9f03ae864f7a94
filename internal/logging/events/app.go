package events

import "github.com/handiism/recipe-browser/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(command, backend, baseURL string) {
	logging.Logger().Info("start", "command", command, "storage", backend, "api", baseURL)
}

func (AppTracer) Stop(command string, err error) {
	if err != nil {
		logging.Logger().Error("exit", "command", command, "error", err.Error())
		return
	}
	logging.Trace("app.stop", "command", command)
}
