package errutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
	"github.com/MannerMan/rocket-fuel/pkg/utils/logging"
)

// fallbackToken is the body written for errors that carry no WebFailure.
const fallbackToken = "internal.server.error"

// Handle logs the error with a message and returns it unchanged. Use it at
// boundaries where the error continues to propagate.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	return err
}

// HandleHTTP logs the error and writes the taxonomy response: WebFailure maps
// to its status and token, anything else becomes a 500 with a generic token.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	status := http.StatusInternalServerError
	token := fallbackToken
	var wf *types.WebFailure
	if errors.As(err, &wf) {
		status = wf.Status
		token = wf.Token
	}

	logger := logging.From(ctx)
	var ge *goerr.Error
	switch {
	case status >= 500 && errors.As(err, &ge):
		logger.Error("HTTP error", "status", status, "error", err.Error(), "values", ge.Values(), "stack", ge.Stacks())
	case status >= 500:
		logger.Error("HTTP error", "status", status, "error", err.Error())
	default:
		logger.Warn("HTTP request rejected", "status", status, "token", token)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": token})
}
