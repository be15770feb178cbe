package insights

import (
	"strings"

	"github.com/dvloznov/bankvision/internal/domain"
)

// Normalize repairs raw provider records for downstream aggregation. The
// output has the same length and order as the input. A blank or missing
// category becomes Uncategorized; the date string is preserved verbatim (date
// parsing failures are handled at the point of use, never here); the amount is
// passed through untouched since direction comes solely from Type.
func Normalize(records []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(records))
	for i, tx := range records {
		if strings.TrimSpace(tx.Category) == "" {
			tx.Category = Uncategorized
		}
		out[i] = tx
	}
	return out
}
