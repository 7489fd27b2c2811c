package format

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxApplyDecimals is the widest point shift ApplyDecimals accepts; it
	// covers any 256-bit value.
	MaxApplyDecimals = MaxUint256DecimalLength - 1
	// MaxTokenDecimals bounds the decimals of native-width amounts and of
	// token metadata. Values at or above it are rejected.
	MaxTokenDecimals = 20
	// MaxTickerLength is the longest unit suffix a token may carry.
	MaxTickerLength = 16
	// MaxAmountLength is the longest string ApplyDecimals can return for a
	// 256-bit value.
	MaxAmountLength = MaxUint256DecimalLength + 1
	// AmountBufferSize fits any amount, a separating space and a ticker.
	AmountBufferSize = MaxAmountLength + 1 + MaxTickerLength

	// HbarDecimals is the number of tinybars in one hbar, as a power of ten.
	HbarDecimals = 8
	// HbarTicker is the unit shown for native amounts.
	HbarTicker = "hbar"
)

// ApplyDecimals renders a plain decimal digit string as a fixed-point value
// with the point placed decimals digits from the right. Trailing fractional
// zeros and a bare trailing point are trimmed, so "123450000" with 4
// decimals is "12345".
func ApplyDecimals(digits string, decimals uint32) (string, error) {
	if digits == "" {
		return "", ErrInvalidDigits.Wrap("empty")
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", ErrInvalidDigits.Wrapf("%q", digits)
		}
	}
	if decimals > MaxApplyDecimals {
		return "", ErrUnsupportedDecimals.Wrapf("%d", decimals)
	}
	return shiftPoint(digits, int(decimals)), nil
}

func shiftPoint(digits string, d int) string {
	if d == 0 {
		return digits
	}

	var s string
	if len(digits) <= d {
		s = "0." + strings.Repeat("0", d-len(digits)) + digits
	} else {
		s = digits[:len(digits)-d] + "." + digits[len(digits)-d:]
	}

	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatAmount renders a native-width amount with the given decimals.
func FormatAmount(amount uint64, decimals uint32) (string, error) {
	if decimals >= MaxTokenDecimals {
		return "", ErrUnsupportedDecimals.Wrapf("%d", decimals)
	}
	return shiftPoint(strconv.FormatUint(amount, 10), int(decimals)), nil
}

// FormatTinybar renders a tinybar amount in hbar, e.g. "1.5 hbar".
func FormatTinybar(tinybar uint64) string {
	return shiftPoint(strconv.FormatUint(tinybar, 10), HbarDecimals) + " " + HbarTicker
}

// FormatAmountWithTicker writes value scaled by decimals, followed by
// " ticker" when ticker is not empty, into out and returns the number of
// bytes written.
func FormatAmountWithTicker(value []byte, decimals uint32, ticker string, out []byte) (int, error) {
	digits, err := Uint256String(value)
	if err != nil {
		return 0, err
	}
	amount, err := ApplyDecimals(digits, decimals)
	if err != nil {
		return 0, err
	}

	need := len(amount)
	if ticker != "" {
		need += 1 + len(ticker)
	}
	if len(out) < need {
		return 0, ErrBufferTooSmall.Wrapf("need %d bytes, have %d", need, len(out))
	}

	n := copy(out, amount)
	if ticker != "" {
		out[n] = ' '
		n++
		n += copy(out[n:], ticker)
	}
	return n, nil
}

// AmountWithTicker is FormatAmountWithTicker into a string.
func AmountWithTicker(value []byte, decimals uint32, ticker string) (string, error) {
	var buf [AmountBufferSize]byte
	if len(ticker) > MaxTickerLength {
		return "", ErrBufferTooSmall.Wrapf("ticker %q longer than %d", ticker, MaxTickerLength)
	}
	n, err := FormatAmountWithTicker(value, decimals, ticker, buf[:])
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// FormatDuration renders seconds as days, hours and seconds, omitting zero
// components, e.g. "1 day 2 hours 30 seconds". Zero is "0 seconds".
func FormatDuration(seconds uint64) string {
	const (
		secondsPerHour = 60 * 60
		secondsPerDay  = 24 * secondsPerHour
	)
	days := seconds / secondsPerDay
	hours := seconds % secondsPerDay / secondsPerHour
	rest := seconds % secondsPerHour

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if rest > 0 || len(parts) == 0 {
		parts = append(parts, plural(rest, "second"))
	}
	return strings.Join(parts, " ")
}

func plural(n uint64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
