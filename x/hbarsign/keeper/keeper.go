package keeper

import (
	"github.com/ethereum/go-ethereum/common"

	"cosmossdk.io/log"

	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
)

// Keeper classifies and validates transaction bodies. It holds only
// read-only collaborators and may be shared between goroutines; the working
// state of a review lives in a types.SigningContext owned by the caller.
type Keeper struct {
	logger log.Logger

	tokens   types.TokenLookup
	observer types.ReviewObserver
}

// NewKeeper creates a new Keeper instance. A nil token lookup knows no
// tokens and a nil observer discards outcomes.
func NewKeeper(
	logger log.Logger,
	tokens types.TokenLookup,
	observer types.ReviewObserver,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	if tokens == nil {
		tokens = noTokens{}
	}
	if observer == nil {
		observer = noObserver{}
	}

	return Keeper{
		logger: logger,

		tokens:   tokens,
		observer: observer,
	}
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

type noTokens struct{}

func (noTokens) ByID(types.EntityID) (types.TokenInfo, bool) { return types.TokenInfo{}, false }

func (noTokens) ByEVMAddress(common.Address) (types.TokenInfo, bool) {
	return types.TokenInfo{}, false
}

type noObserver struct{}

func (noObserver) ObserveReview(*types.Review) {}

func (noObserver) ObserveRejection(error) {}
