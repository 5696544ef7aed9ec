// Package rubix is a small client for the HTTP API of a Rubix ledger node:
// RBT transfers, signature responses, account info and faucet token minting.
package rubix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	pathInitiateTransfer  = "/api/initiate-rbt-transfer"
	pathSignatureResponse = "/api/signature-response"
	pathAccountInfo       = "/api/get-account-info"
	pathGenerateFaucet    = "/api/generate-faucettest-token"

	// Limit error-body reads so we don't accidentally slurp huge responses.
	maxErrBodyBytes = 4096
	maxBodyBytes    = 1 << 20
)

var (
	// ErrTransport marks failures to reach the node: connection errors,
	// timeouts and 5xx answers.
	ErrTransport = errors.New("ledger node transport error")

	// ErrBadResponse marks answers that arrived but cannot be used: non-2xx
	// client errors, undecodable bodies and missing fields.
	ErrBadResponse = errors.New("ledger node bad response")
)

// Error describes a failed call to the node.
type Error struct {
	Op         string
	StatusCode int
	Body       string
	Kind       error
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("rubix ")
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if e.Body != "" {
		b.WriteString(": ")
		b.WriteString(e.Body)
	}
	return b.String()
}

// Is matches the error kind, so errors.Is(err, ErrTransport) works.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err was caused by a request deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// Ledger defines the node operations used by the faucet.
type Ledger interface {
	// InitiateTransfer starts an RBT transfer and returns the transaction id to sign.
	InitiateTransfer(ctx context.Context, req *TransferRequest) (*Initiated, error)

	// SignatureResponse completes a pending operation with the signing passphrase.
	SignatureResponse(ctx context.Context, req *SignatureRequest) (*Signed, error)

	// GetAccountInfo returns the balances of did.
	GetAccountInfo(ctx context.Context, did string) (*AccountInfo, error)

	// GenerateFaucetToken mints faucet test tokens to did and returns the id to sign.
	GenerateFaucetToken(ctx context.Context, req *MintRequest) (*Initiated, error)
}

// Client implements Ledger over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	retryDelay time.Duration
}

// NewClient creates a client for the node at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse node url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("node url %q must be absolute", baseURL)
	}

	s := applyOptions(opts)
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: s.httpClient,
		logger:     s.logger,
		retryDelay: s.retryDelay,
	}, nil
}

func (c *Client) InitiateTransfer(ctx context.Context, req *TransferRequest) (*Initiated, error) {
	const op = "initiate-rbt-transfer"

	var resp basicResponse
	if err := c.do(ctx, op, http.MethodPost, pathInitiateTransfer, req, &resp); err != nil {
		return nil, err
	}
	return initiatedFrom(op, &resp)
}

func (c *Client) SignatureResponse(ctx context.Context, req *SignatureRequest) (*Signed, error) {
	const op = "signature-response"

	var resp basicResponse
	if err := c.do(ctx, op, http.MethodPost, pathSignatureResponse, req, &resp); err != nil {
		return nil, err
	}
	return &Signed{ID: req.ID, Status: resp.Status, Message: resp.Message}, nil
}

func (c *Client) GetAccountInfo(ctx context.Context, did string) (*AccountInfo, error) {
	const op = "get-account-info"

	path := pathAccountInfo + "?" + url.Values{"did": []string{did}}.Encode()

	var resp accountInfoResponse
	if err := c.do(ctx, op, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.AccountInfo) == 0 {
		return nil, &Error{Op: op, Kind: ErrBadResponse, Err: fmt.Errorf("no account info for %s: %s", did, resp.Message)}
	}
	return &resp.AccountInfo[0], nil
}

func (c *Client) GenerateFaucetToken(ctx context.Context, req *MintRequest) (*Initiated, error) {
	const op = "generate-faucettest-token"

	var resp basicResponse
	if err := c.do(ctx, op, http.MethodPost, pathGenerateFaucet, req, &resp); err != nil {
		return nil, err
	}
	return initiatedFrom(op, &resp)
}

func initiatedFrom(op string, resp *basicResponse) (*Initiated, error) {
	var res idResult
	if len(resp.Result) > 0 && string(resp.Result) != "null" {
		if err := json.Unmarshal(resp.Result, &res); err != nil {
			return nil, &Error{Op: op, Kind: ErrBadResponse, Err: fmt.Errorf("decode result: %w", err)}
		}
	}
	if res.ID == "" {
		return nil, &Error{Op: op, Kind: ErrBadResponse, Err: fmt.Errorf("missing transaction id: %s", resp.Message)}
	}
	return &Initiated{ID: res.ID, Message: resp.Message}, nil
}

// do performs the call, retrying once after a transport error.
//
// The retry is blind: a signature-response that timed out on our side may
// have completed on the node, and the repeated call then fails. The payout
// is reported as failed although the tokens moved.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", op, err)
		}
	}

	err := c.attempt(ctx, op, method, path, body, out)
	if err == nil || !errors.Is(err, ErrTransport) || ctx.Err() != nil {
		return err
	}

	c.logger.Warn("Ledger node call failed, retrying once",
		zap.String("op", op),
		zap.Duration("retry_delay", c.retryDelay),
		zap.Error(err),
	)

	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return &Error{Op: op, Kind: ErrTransport, Err: ctx.Err()}
	case <-timer.C:
	}

	return c.attempt(ctx, op, method, path, body, out)
}

func (c *Client) attempt(ctx context.Context, op, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Kind: ErrTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return &Error{Op: op, Kind: ErrTransport, StatusCode: resp.StatusCode, Body: readErrBody(resp.Body)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Op: op, Kind: ErrBadResponse, StatusCode: resp.StatusCode, Body: readErrBody(resp.Body)}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		if IsTimeout(err) {
			return &Error{Op: op, Kind: ErrTransport, Err: err}
		}
		return &Error{Op: op, Kind: ErrBadResponse, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func readErrBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrBodyBytes))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
