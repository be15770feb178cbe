package extract

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dvloznov/bankvision/internal/domain"
)

// decodeAnalysisResult parses the model's JSON into domain types. The model
// is schema-constrained but probabilistic, so decoding is deliberately
// tolerant: missing fields stay zero-valued, wrong scalar types are coerced,
// unknown type labels default to expense, and non-finite amounts become 0.
// Only a document that is not a JSON object at the top level is an error.
func decodeAnalysisResult(data []byte) (*domain.AnalysisResult, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decodeAnalysisResult: unmarshal: %w", err)
	}

	result := &domain.AnalysisResult{}

	if summary, ok := raw["summary"].(map[string]interface{}); ok {
		result.Summary = domain.Summary{
			TotalIncome:        asFloat(summary["totalIncome"]),
			TotalExpense:       asFloat(summary["totalExpense"]),
			NetChange:          asFloat(summary["netChange"]),
			Currency:           asString(summary["currency"]),
			StatementDateRange: asString(summary["statementDateRange"]),
		}
	}

	if items, ok := raw["transactions"].([]interface{}); ok {
		result.Transactions = make([]domain.Transaction, 0, len(items))
		for _, item := range items {
			obj, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			result.Transactions = append(result.Transactions, domain.Transaction{
				ID:          asString(obj["id"]),
				Date:        asString(obj["date"]),
				Description: asString(obj["description"]),
				Amount:      asFloat(obj["amount"]),
				Category:    asString(obj["category"]),
				Type:        asType(obj["type"]),
			})
		}
	}

	assignIDs(result.Transactions)
	return result, nil
}

// assignIDs gives every transaction without an ID one that is unique within
// the result. Duplicates coming back from the model are re-assigned too, so
// the per-result uniqueness invariant always holds.
func assignIDs(records []domain.Transaction) {
	seen := make(map[string]bool, len(records))
	for i := range records {
		if records[i].ID == "" || seen[records[i].ID] {
			records[i].ID = uuid.NewString()
		}
		seen[records[i].ID] = true
	}
}

func asString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

func asFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0
		}
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asType(v interface{}) domain.TransactionType {
	if s, ok := v.(string); ok && strings.EqualFold(strings.TrimSpace(s), "income") {
		return domain.Income
	}
	return domain.Expense
}
