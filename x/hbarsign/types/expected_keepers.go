package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// TokenLookup resolves static token metadata. Implementations are read-only.
type TokenLookup interface {
	ByID(id EntityID) (TokenInfo, bool)
	ByEVMAddress(addr common.Address) (TokenInfo, bool)
}

// ReviewObserver is notified of every review outcome.
type ReviewObserver interface {
	ObserveReview(review *Review)
	ObserveRejection(reason error)
}
