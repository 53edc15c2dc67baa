package service

import (
	"errors"
	"net/http"

	"github.com/backoffice-labs/store-admin/internal/client"
	appErrors "github.com/backoffice-labs/store-admin/internal/errors"
)

// remoteError classifies a client failure into the AppError taxonomy
// the UI keys on: transport failures, missing resources and every
// other non-2xx each get their own code. Errors the client did not
// produce pass through unchanged.
func remoteError(err error) error {

	if err == nil {
		return nil
	}

	var apiErr *client.APIError

	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.TransportErr != nil:
		return appErrors.TransportError(apiErr.Message()).WithError(err)
	case apiErr.StatusCode == http.StatusNotFound:
		return appErrors.NotFoundError(apiErr.Message()).WithError(err)
	default:
		return appErrors.APIError(apiErr.Message()).WithError(err)
	}
}
