package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Cursor kinds keep a token issued by one listing from being replayed against another.
const (
	KindLedger       = "ledger"
	KindJournalEntry = "journal_entry"
	tokenSeparator   = "|"
	DefaultPageSize  = 50
	MaxPageSize      = 500
)

// EncodeToken creates a base64 encoded cursor pointing just past position.
func EncodeToken(kind string, position int64) string {
	tokenStr := fmt.Sprintf("%s%s%d", kind, tokenSeparator, position)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a cursor produced by EncodeToken for the same kind.
func DecodeToken(kind string, token string) (int64, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), tokenSeparator, 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	if parts[0] != kind {
		return 0, fmt.Errorf("invalid pagination token: issued for %q, not %q", parts[0], kind)
	}
	position, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (position parse): %w", err)
	}
	return position, nil
}

// NormalizeLimit clamps a requested page size.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}
