package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/Reksit/Hack4.0/client/internal/errors"
)

// validator is implemented by every request schema in internal/types.
type validator interface {
	Validate() error
}

// textReceiver lets acknowledgement schemas accept a plain-text 2xx body.
type textReceiver interface {
	SetText(string)
}

// send executes req and decodes a 2xx body into out (nil out discards it).
// Non-2xx responses become *errors.APIError even when the owning client has
// no response hook installed; transport errors are returned unchanged.
func send(ctx context.Context, req *resty.Request, method, path, op string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return apierrors.NewHTTPError(method, resp.Request.URL, resp.StatusCode(), resp.String())
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if tr, ok := out.(textReceiver); ok && !json.Valid(resp.Body()) {
		tr.SetText(resp.String())
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// sendJSON validates body, then sends it as the request payload.
func sendJSON(ctx context.Context, rc *resty.Client, method, path, op string, body validator, out any) error {
	if err := body.Validate(); err != nil {
		return err
	}
	return send(ctx, rc.R().SetBody(body), method, path, op, out)
}
