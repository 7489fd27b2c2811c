package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	sdkmath "cosmossdk.io/math"

	"github.com/TrustedSmartChain/hbarsign/precompiles/erc20"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/format"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/wire"
)

const (
	FlagKeyIndex = "key-index"
	FlagAPDU     = "apdu"
	FlagOutput   = "output"
	FlagTicker   = "ticker"

	OutputText = "text"
	OutputJSON = "json"
)

// GetCommands returns the review and inspection commands.
func GetCommands() []*cobra.Command {
	return []*cobra.Command{
		CmdReview(),
		CmdDecodeCalldata(),
		CmdExtractMemo(),
		CmdFormatAmount(),
		CmdReplay(),
	}
}

func CmdReview() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review [hex-body]",
		Short: "Decode, validate and classify a TransactionBody",
		Long: `Review prints the fields a signer would show for the transaction, or fails
with "malformed input" when the transaction must not be signed. With --apdu
the input is a sign payload: a 4 byte little-endian key index followed by the
body.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}
			raw, err := decodeHex(args[0])
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString(FlagOutput)
			if output != OutputText && output != OutputJSON {
				return fmt.Errorf("invalid --%s %q", FlagOutput, output)
			}

			var review *types.Review
			if apdu, _ := cmd.Flags().GetBool(FlagAPDU); apdu {
				review, err = clientCtx.Keeper.ReviewSignPayload(raw)
			} else {
				keyIndex, _ := cmd.Flags().GetUint32(FlagKeyIndex)
				review, err = clientCtx.Keeper.ReviewTransaction(keyIndex, raw)
			}
			if err != nil {
				return err
			}
			return printReview(cmd, review, output)
		},
	}

	cmd.Flags().Uint32(FlagKeyIndex, 0, "key index the transaction is signed with")
	cmd.Flags().Bool(FlagAPDU, false, "input carries a little-endian key index prefix")
	cmd.Flags().String(FlagOutput, OutputText, "output format (text|json)")
	return cmd
}

func printReview(cmd *cobra.Command, review *types.Review, output string) error {
	out := cmd.OutOrStdout()
	if output == OutputJSON {
		bz, err := json.MarshalIndent(struct {
			Type string `json:"type"`
			*types.Review
		}{review.TypeName(), review}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(bz))
		return err
	}

	fmt.Fprintf(out, "%s (%s)\n", review.Summary, review.TypeName())
	for _, f := range review.Fields {
		fmt.Fprintf(out, "  %s: %s\n", f.Title, f.Value)
	}
	return nil
}

func CmdDecodeCalldata() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-calldata [hex-calldata]",
		Short: "Decode ERC-20 transfer(address,uint256) calldata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calldata, err := decodeHex(args[0])
			if err != nil {
				return err
			}
			transfer, err := erc20.ParseTransferFunction(calldata)
			if err != nil {
				return err
			}
			amount, err := erc20.WordToAmount(transfer.Amount)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "method: %s\n", erc20.TransferMethod)
			fmt.Fprintf(out, "to: %s\n", erc20.AddressHex(transfer.To))
			fmt.Fprintf(out, "amount: %s\n", amount)
			fmt.Fprintf(out, "amount word: %s\n", erc20.WordHex(transfer.Amount))
			return nil
		},
	}
}

func CmdExtractMemo() *cobra.Command {
	return &cobra.Command{
		Use:   "extract-memo [hex-body]",
		Short: "Read the account memo of a cryptoUpdateAccount body from the raw bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decodeHex(args[0])
			if err != nil {
				return err
			}

			var buf [types.MaxMemoSize + 1]byte
			n, err := wire.ExtractNestedString(raw, wire.AccountMemoField, buf[:])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", buf[:n])
			return nil
		},
	}
}

func CmdFormatAmount() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format-amount [integer] [decimals]",
		Short: "Render an unsigned 256-bit integer with decimals and an optional ticker",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := sdkmath.ParseUint(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount: %s", args[0])
			}
			decimals, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid decimals: %s", args[1])
			}
			ticker, _ := cmd.Flags().GetString(FlagTicker)

			var word erc20.Uint256
			amount.BigInt().FillBytes(word[:])
			s, err := format.AmountWithTicker(word[:], uint32(decimals), ticker)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().String(FlagTicker, "", "unit appended to the amount")
	return cmd
}

func CmdReplay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [dir]",
		Short: "Review every *.hex file in a directory",
		Long: `Replay reviews each *.hex file in dir, in name order, printing the outcome per
file. When metrics are enabled the collected counters are printed at the end.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}
			keyIndex, _ := cmd.Flags().GetUint32(FlagKeyIndex)

			files, err := filepath.Glob(filepath.Join(args[0], "*.hex"))
			if err != nil {
				return err
			}
			sort.Strings(files)

			out := cmd.OutOrStdout()
			var accepted, rejected int
			for _, file := range files {
				name := filepath.Base(file)
				bz, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				raw, err := decodeHex(string(bz))
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}

				review, err := clientCtx.Keeper.ReviewTransaction(keyIndex, raw)
				if err != nil {
					rejected++
					fmt.Fprintf(out, "%s: rejected: %s\n", name, err)
					continue
				}
				accepted++
				fmt.Fprintf(out, "%s: %s\n", name, review.TypeName())
			}
			fmt.Fprintf(out, "%d accepted, %d rejected\n", accepted, rejected)

			if clientCtx.Gatherer == nil {
				return nil
			}
			return printMetrics(cmd, clientCtx.Gatherer)
		},
	}

	cmd.Flags().Uint32(FlagKeyIndex, 0, "key index the transactions are signed with")
	return cmd
}

func printMetrics(cmd *cobra.Command, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			fmt.Fprintf(out, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
	return nil
}

// decodeHex accepts hex with or without a 0x prefix and surrounding
// whitespace.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	bz, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return bz, nil
}
