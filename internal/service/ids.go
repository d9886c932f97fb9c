package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// ID prefixes for API resources
const (
	PrefixUser        = "usr-"
	PrefixTransaction = "tan-"
)

func generateUserID() string {
	return PrefixUser + dashlessUUID()
}

func generateTransactionID() string {
	return PrefixTransaction + dashlessUUID()
}

// generateAccountNumber produces a fixed-format eight digit account number
// starting with "01". Uniqueness is enforced by the primary key; the id
// space is small enough that collisions surface as insert conflicts rather
// than being retried here.
func generateAccountNumber() string {
	return fmt.Sprintf("01%06d", rand.IntN(1_000_000))
}

func dashlessUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
