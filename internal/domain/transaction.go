package domain

// TransactionType is the direction of a transaction. The sign of Amount is
// not authoritative; Type alone decides whether a record adds to or subtracts
// from the balance.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is one raw record as returned by the extraction provider.
// Every field except ID is untrusted: the date may be malformed, the category
// empty, the description blank. Amount is an absolute magnitude.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // intended "YYYY-MM-DD", preserved verbatim
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
}

// Summary holds the provider-computed totals. NetChange is trusted as-is and
// not reconciled against the line items. Currency is intended to be an
// ISO 4217 code but is not guaranteed valid.
type Summary struct {
	TotalIncome        float64 `json:"totalIncome"`
	TotalExpense       float64 `json:"totalExpense"`
	NetChange          float64 `json:"netChange"`
	Currency           string  `json:"currency"`
	StatementDateRange string  `json:"statementDateRange,omitempty"`
}

// AnalysisResult is the complete output of one extraction call. It is held
// read-only in memory for the session and never persisted. Within one result
// all transaction IDs are unique.
type AnalysisResult struct {
	Summary      Summary       `json:"summary"`
	Transactions []Transaction `json:"transactions"`
}
