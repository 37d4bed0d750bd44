package steamclient

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/teknology-hub/tek-game-runtime/errors"
)

const (
	// StepTimeout bounds each network round trip.
	StepTimeout = 2500 * time.Millisecond

	// OverallTimeout bounds a whole refresh before it is abandoned.
	OverallTimeout = 10 * time.Second
)

// Client is one CM session over a websocket connection. Not safe for
// concurrent use; the refresh flow is strictly sequential.
type Client struct {
	conn *websocket.Conn
}

// request is the client→CM message envelope.
type request struct {
	Type   string   `json:"type"`
	AppIDs []uint32 `json:"app_ids,omitempty"`
}

// ProductEntry is one app's PICS result: its id and appinfo VDF text.
type ProductEntry struct {
	ID   uint32 `json:"id"`
	Data string `json:"data"`
}

// response is the CM→client message envelope.
type response struct {
	Type    string         `json:"type"`
	Result  string         `json:"result"`
	Entries []ProductEntry `json:"entries,omitempty"`
}

// Dial connects to a CM endpoint. The connection attempt runs under the
// per-step budget in addition to any deadline on ctx.
func Dial(ctx context.Context, endpoint string) (*Client, error) {
	dialCtx, cancel := context.WithTimeout(ctx, StepTimeout)
	defer cancel()
	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, endpoint, nil)
	if err != nil {
		return nil, errors.New(errors.PhaseRefresh, errors.KindIO).
			Cause(err).Detail("connecting to %s", endpoint).Build()
	}
	Logger().Debug("CM session established", zap.String("endpoint", endpoint))
	return &Client{conn: conn}, nil
}

// Close tears the session down.
func (c *Client) Close() error {
	return c.conn.Close()
}

// roundTrip sends one request and decodes the reply of the matching type,
// all under the per-step budget.
func (c *Client) roundTrip(ctx context.Context, req request) (*response, error) {
	deadline := time.Now().Add(StepTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return nil, errors.New(errors.PhaseRefresh, errors.KindIO).Cause(err).Build()
	}
	if err := c.conn.WriteJSON(req); err != nil {
		return nil, errors.New(errors.PhaseRefresh, errors.KindIO).
			Cause(err).Detail("sending %s", req.Type).Build()
	}
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return nil, errors.New(errors.PhaseRefresh, errors.KindIO).Cause(err).Build()
	}
	var resp response
	if err := c.conn.ReadJSON(&resp); err != nil {
		return nil, errors.New(errors.PhaseRefresh, errors.KindTimeout).
			Cause(err).Detail("awaiting %s reply", req.Type).Build()
	}
	if resp.Type != req.Type {
		return nil, errors.New(errors.PhaseRefresh, errors.KindInvalidData).
			Detail("reply type %q to a %s request", resp.Type, req.Type).Build()
	}
	if resp.Result != "ok" {
		return nil, errors.New(errors.PhaseRefresh, errors.KindInvalidData).
			Detail("%s failed: %s", req.Type, resp.Result).Build()
	}
	return &resp, nil
}

// SignInAnon performs an anonymous sign-in; PICS requests require a signed
// in session.
func (c *Client) SignInAnon(ctx context.Context) error {
	_, err := c.roundTrip(ctx, request{Type: "sign_in_anon"})
	return err
}

// GetAccessTokens requests PICS access tokens for the given apps. The
// tokens themselves stay server side; the call gates the product info that
// follows.
func (c *Client) GetAccessTokens(ctx context.Context, appIDs []uint32) error {
	_, err := c.roundTrip(ctx, request{Type: "get_access_token", AppIDs: appIDs})
	return err
}

// GetProductInfo fetches appinfo VDF text for the given apps. Apps the
// endpoint has no data for are absent from the result.
func (c *Client) GetProductInfo(ctx context.Context, appIDs []uint32) ([]ProductEntry, error) {
	resp, err := c.roundTrip(ctx, request{Type: "get_product_info", AppIDs: appIDs})
	if err != nil {
		return nil, err
	}
	return resp.Entries, nil
}
