// Package codec converts between ComStar wire representations and the
// canonical trading model: compound symbols, "Category.Member" enum strings
// and venue timestamp strings.
package codec

import "strings"

// Settlement speed tokens. Any other right-hand token is a rejected symbol.
const (
	SettleT0 = "T0" // same-day clearing
	SettleT1 = "T1" // next-day clearing
)

const symbolSep = "_"

// SplitSymbol splits a compound symbol like "204001_T1" into instrument
// code and settlement speed. ok is false when the separator is missing or
// the settlement token is not T0/T1; callers log a user-facing reason and
// abort the request.
func SplitSymbol(symbol string) (code, settle string, ok bool) {
	idx := strings.Index(symbol, symbolSep)
	if idx < 0 {
		return "", "", false
	}

	code = symbol[:idx]
	settle = symbol[idx+1:]
	if settle != SettleT0 && settle != SettleT1 {
		return "", "", false
	}
	return code, settle, true
}

// JoinSymbol is the inverse of SplitSymbol.
func JoinSymbol(code, settle string) string {
	return code + symbolSep + settle
}
