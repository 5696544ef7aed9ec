package faucet

import (
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/sha3"
)

// TokenHash returns the hex SHA3-256 digest of the decimal form of n.
// It is a trace value for a claim, not a proof of transfer.
func TokenHash(n uint64) string {
	sum := sha3.Sum256([]byte(strconv.FormatUint(n, 10)))
	return hex.EncodeToString(sum[:])
}
