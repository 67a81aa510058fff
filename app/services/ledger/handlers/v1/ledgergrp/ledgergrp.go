// Package ledgergrp maintains the group of handlers for ledger access.
package ledgergrp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/powledger/powledger/business/web/errs"
	"github.com/powledger/powledger/foundation/events"
	"github.com/powledger/powledger/foundation/ledger"
	"github.com/powledger/powledger/foundation/web"
	"go.uber.org/zap"
)

// errChainInvalid is returned to clients when the chain fails validation
// before an operation that depends on a consistent chain.
var errChainInvalid = errors.New("the chain is invalid")

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Ledger
	WS     websocket.Upgrader
	Evts   *events.Events
}

// Events handles a web socket to provide mining events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Subscribe(v.TraceID)
	defer h.Evts.Unsubscribe(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Mine seals a new block carrying the posted data and appends it to the
// chain. The request blocks for the duration of the proof search.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var nb newBlock
	if err := web.Decode(r, &nb); err != nil {
		return err
	}

	if !h.Ledger.IsChainValid() {
		return errs.NewTrusted(errChainInvalid, http.StatusBadRequest)
	}

	h.Log.Infow("mine block", "traceid", v.TraceID, "data", nb.Data)

	blk, err := h.Ledger.Mine(ctx, nb.Data)
	if err != nil {
		return fmt.Errorf("mining failed: %w", err)
	}

	return web.Respond(ctx, w, blk, http.StatusOK)
}

// List returns the full chain in order.
func (h Handlers) List(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if !h.Ledger.IsChainValid() {
		return errs.NewTrusted(errChainInvalid, http.StatusBadRequest)
	}

	return web.Respond(ctx, w, h.Ledger.Blocks(), http.StatusOK)
}

// Last returns the most recently appended block.
func (h Handlers) Last(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if !h.Ledger.IsChainValid() {
		return errs.NewTrusted(errChainInvalid, http.StatusBadRequest)
	}

	return web.Respond(ctx, w, h.Ledger.LastBlock(), http.StatusOK)
}

// Validate reports whether the chain is currently valid.
func (h Handlers) Validate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := validity{
		Valid: h.Ledger.IsChainValid(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Delete removes the first block whose proof matches the posted value and
// re-seals the blocks after it. An unknown proof is a silent success.
func (h Handlers) Delete(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var db deleteBlock
	if err := web.Decode(r, &db); err != nil {
		return err
	}

	h.Log.Infow("delete block", "traceid", v.TraceID, "proof", db.Proof)

	if err := h.Ledger.Delete(ctx, db.Proof); err != nil {
		return fmt.Errorf("deletion failed: %w", err)
	}

	resp := status{
		Status: "block deleted",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Clear truncates the chain down to the genesis block. Clearing a chain
// that only holds the genesis block is rejected.
func (h Handlers) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if h.Ledger.Height() == 1 {
		return errs.NewTrusted(errors.New("nothing to clear, only the genesis"), http.StatusBadRequest)
	}

	h.Ledger.Clear()

	resp := status{
		Status: "chain cleared",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
