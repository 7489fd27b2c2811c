package cli

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/keeper"
)

// ClientContext carries what the commands need from the application.
type ClientContext struct {
	Keeper keeper.Keeper
	// Gatherer is nil when metrics are disabled.
	Gatherer prometheus.Gatherer
}

type clientContextKey struct{}

// SetCmdClientContext stores clientCtx on the command context.
func SetCmdClientContext(cmd *cobra.Command, clientCtx ClientContext) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, clientContextKey{}, clientCtx))
}

// GetClientContext returns the context stored by SetCmdClientContext.
func GetClientContext(cmd *cobra.Command) (ClientContext, error) {
	if ctx := cmd.Context(); ctx != nil {
		if clientCtx, ok := ctx.Value(clientContextKey{}).(ClientContext); ok {
			return clientCtx, nil
		}
	}
	return ClientContext{}, errors.New("client context is not set")
}
