package walletapi

import (
	"context"
)

// Transport abstracts the HTTP gateway the API surfaces issue requests
// through. The default implementation lives in mwclient; tests and
// alternative runtimes supply their own.
//
// Implementations must return a *types.Error for every failure: non-2xx
// responses mapped per the service error contract, network and decode
// failures normalized to transport errors.
type Transport interface {
	// Get issues a GET to url and decodes the 2xx JSON body into out.
	Get(ctx context.Context, url string, out any) error
	// Post issues a POST with body serialized as JSON and decodes the
	// 2xx JSON body into out.
	Post(ctx context.Context, url string, body any, out any) error
}

// APIOptions contains the collaborators an API surface needs.
type APIOptions struct {
	Transport Transport
	BaseURL   string
}
