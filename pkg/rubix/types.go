package rubix

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TransferRequest is the body of POST /api/initiate-rbt-transfer
type TransferRequest struct {
	Comment    string  `json:"comment"`
	Receiver   string  `json:"receiver"`
	Sender     string  `json:"sender"`
	TokenCount float64 `json:"tokenCount"`
	Type       int     `json:"type"`
}

// SignatureRequest is the body of POST /api/signature-response
type SignatureRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// MintRequest is the body of POST /api/generate-faucettest-token
type MintRequest struct {
	DID        string `json:"did"`
	TokenCount int64  `json:"token_count"`
}

// Initiated is the intermediate state of a two-step node operation: the node
// accepted the request and waits for a signature response on ID.
type Initiated struct {
	ID      string
	Message string
}

// Signed is the final state of a two-step node operation.
type Signed struct {
	ID      string
	Status  bool
	Message string
}

// AccountInfo is one entry of the get-account-info response.
type AccountInfo struct {
	DID        string          `json:"did"`
	DIDType    int             `json:"did_type"`
	RBTAmount  decimal.Decimal `json:"rbt_amount"`
	PledgedRBT decimal.Decimal `json:"pledged_rbt"`
	LockedRBT  decimal.Decimal `json:"locked_rbt"`
	PinnedRBT  decimal.Decimal `json:"pinned_rbt"`
}

// basicResponse is the envelope every node endpoint answers with.
type basicResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type idResult struct {
	ID string `json:"id"`
}

type accountInfoResponse struct {
	basicResponse
	AccountInfo []AccountInfo `json:"account_info"`
}
