// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/powledger/powledger/app/services/ledger/handlers/v1/ledgergrp"
	"github.com/powledger/powledger/foundation/events"
	"github.com/powledger/powledger/foundation/ledger"
	"github.com/powledger/powledger/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Ledger
	Evts   *events.Events
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	lgh := ledgergrp.Handlers{
		Log:    cfg.Log,
		Ledger: cfg.Ledger,
		WS:     websocket.Upgrader{},
		Evts:   cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", lgh.Events)
	app.Handle(http.MethodGet, version, "/blocks/list", lgh.List)
	app.Handle(http.MethodGet, version, "/blocks/last", lgh.Last)
	app.Handle(http.MethodPost, version, "/blocks/mine", lgh.Mine)
	app.Handle(http.MethodPost, version, "/blocks/delete", lgh.Delete)
	app.Handle(http.MethodGet, version, "/chain/validate", lgh.Validate)
	app.Handle(http.MethodPost, version, "/chain/clear", lgh.Clear)
}
