// Package mwclient is the entry point of the meshwallet SDK: a client over
// the wallet service HTTP API with typed request surfaces and polling-based
// wait semantics for asynchronous operations.
package mwclient

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/meshwallet/sdk-go/core/logging"
	clientType "github.com/meshwallet/sdk-go/core/types"
	"github.com/meshwallet/sdk-go/core/util"
	"github.com/meshwallet/sdk-go/core/walletapi"
)

// DefaultBaseURL is the production wallet service API endpoint.
const DefaultBaseURL = "https://api.meshwallet.io"

type Client struct {
	BaseURL string `validate:"required,http_url"`

	relayURL          string
	apiKey            string
	headers           map[string]string
	httpClient        *http.Client
	transport         walletapi.Transport
	signer            clientType.Signer
	logger            *zap.Logger
	entrypointAddress string
	waitDefaults      clientType.WaitOptions
}

var _ clientType.Client = (*Client)(nil)

type Option func(*Client)

// NewClient creates a wallet service client. An empty baseURL takes
// DefaultBaseURL. The default transport is HTTPTransport; WithTransport
// swaps in a custom gateway without touching any global state.
func NewClient(baseURL string, options ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL: baseURL,
		logger:  logging.Logger,
	}
	for _, option := range options {
		option(c)
	}

	if c.transport == nil {
		c.transport = NewHTTPTransport(c.apiKey, c.httpClient, c.headers)
	}

	// Validate the client
	if err := c.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	return c, nil
}

func (c *Client) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// WithAPIKey sets the service API key used for authentication headers.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithRelayURL enables the relay status surface at the given base URL.
func WithRelayURL(relayURL string) Option {
	return func(c *Client) {
		c.relayURL = relayURL
	}
}

// WithHTTPClient sets a custom HTTP client for the default transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRequestTimeout bounds each individual request issued by the default
// transport, independent of any polling deadline.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithHeaders merges extra headers into every request of the default
// transport.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithTransport replaces the HTTP gateway entirely.
func WithTransport(transport walletapi.Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithSigner configures the signer used by SubmitSigned.
func WithSigner(signer clientType.Signer) Option {
	return func(c *Client) {
		c.signer = signer
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithEntrypointAddress overrides the entrypoint contract used for
// user-operation hashing.
func WithEntrypointAddress(address string) Option {
	return func(c *Client) {
		c.entrypointAddress = address
	}
}

// WithWaitDefaults sets client-level polling defaults. Per-call WaitOptions
// still win field by field.
func WithWaitDefaults(defaults clientType.WaitOptions) Option {
	return func(c *Client) {
		c.waitDefaults = defaults
	}
}

// Signer returns the configured signer, or nil in unsigned mode.
func (c *Client) Signer() clientType.Signer {
	return c.signer
}

// Transport returns the gateway the client issues requests through.
func (c *Client) Transport() walletapi.Transport {
	return c.transport
}

// LoadOperationAPI returns the operation request surface.
func (c *Client) LoadOperationAPI() (clientType.IOperationAPI, error) {
	return walletapi.LoadOperationAPI(walletapi.OperationAPIOptions{
		Transport:         c.transport,
		BaseURL:           c.BaseURL,
		Signer:            c.signer,
		EntrypointAddress: c.entrypointAddress,
	})
}

// LoadRelayAPI returns the relay request surface. Requires WithRelayURL.
func (c *Client) LoadRelayAPI() (clientType.IRelayAPI, error) {
	if c.relayURL == "" {
		return nil, errors.New("relay url not configured: use WithRelayURL")
	}
	return walletapi.LoadRelayAPI(walletapi.RelayAPIOptions{
		Transport: c.transport,
		RelayURL:  c.relayURL,
	})
}

// LoadWalletAPI returns the wallet request surface.
func (c *Client) LoadWalletAPI() (clientType.IWalletAPI, error) {
	return walletapi.LoadWalletAPI(walletapi.APIOptions{
		Transport: c.transport,
		BaseURL:   c.BaseURL,
	})
}

// LoadBridgeAPI returns the cross-chain bridge request surface.
func (c *Client) LoadBridgeAPI() (clientType.IBridgeAPI, error) {
	return walletapi.LoadBridgeAPI(walletapi.APIOptions{
		Transport: c.transport,
		BaseURL:   c.BaseURL,
	})
}

// SubmitOperation submits a user operation and returns the accepted
// operation record with its server-assigned ID.
func (c *Client) SubmitOperation(ctx context.Context, input clientType.SubmitOperationInput) (*clientType.Operation, error) {
	api, err := c.LoadOperationAPI()
	if err != nil {
		return nil, err
	}
	return api.Submit(ctx, input)
}

// GetOperation fetches the current status of an operation by ID.
func (c *Client) GetOperation(ctx context.Context, id string) (*clientType.Operation, error) {
	api, err := c.LoadOperationAPI()
	if err != nil {
		return nil, err
	}
	return api.Get(ctx, clientType.GetOperationInput{ID: id})
}

// WaitForOperation polls an operation until it reaches a terminal state
// (success or failed) or a bound trips.
//
// The identifier is shape-checked before the first request. Defaults when
// opts fields are nil: 2s interval, 60 attempts, 120s wall-clock deadline;
// the attempt cap and the deadline are enforced together and polling fails
// with a timeout error on whichever trips first. OnPoll fires once per
// completed poll, in order, with the exact payload of that poll.
func (c *Client) WaitForOperation(ctx context.Context, id string, opts clientType.WaitOptions) (*clientType.Operation, error) {
	if err := util.ValidateOperationID(id); err != nil {
		return nil, err
	}
	api, err := c.LoadOperationAPI()
	if err != nil {
		return nil, err
	}
	return c.waitForTerminal(ctx, id, func(ctx context.Context) (*clientType.Operation, error) {
		return api.Get(ctx, clientType.GetOperationInput{ID: id})
	}, opts)
}

// WaitForOp is the relay flavor of WaitForOperation: identifiers are
// free-form relay tokens and a missing operation fails immediately with
// the distinct not-found error.
func (c *Client) WaitForOp(ctx context.Context, token string, opts clientType.WaitOptions) (*clientType.Operation, error) {
	api, err := c.LoadRelayAPI()
	if err != nil {
		return nil, err
	}
	return c.waitForTerminal(ctx, token, func(ctx context.Context) (*clientType.Operation, error) {
		return api.GetOp(ctx, token)
	}, opts)
}
