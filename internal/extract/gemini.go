package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/dvloznov/bankvision/internal/domain"
)

// DefaultModelName is the Gemini model used for statement extraction.
const DefaultModelName = "gemini-2.5-flash"

// extractionTemperature is kept low for extraction accuracy.
const extractionTemperature = float32(0.1)

// GeminiProvider implements Provider against the Gemini API. The API key is
// taken from the environment (GEMINI_API_KEY) by the genai client.
type GeminiProvider struct {
	client *genai.Client
	model  string
	log    zerolog.Logger
}

// NewGeminiProvider creates a provider using the default model.
func NewGeminiProvider(ctx context.Context, log zerolog.Logger) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("NewGeminiProvider: create genai client: %w", err)
	}
	return &GeminiProvider{client: client, model: DefaultModelName, log: log}, nil
}

// responseSchema constrains the model to the AnalysisResult shape. The
// decoder still tolerates deviations: the schema is a request, not a
// guarantee, when the upstream is probabilistic.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"totalIncome":        {Type: genai.TypeNumber, Description: "Sum of all positive credit transactions"},
					"totalExpense":       {Type: genai.TypeNumber, Description: "Sum of all debit transactions as a positive absolute value"},
					"netChange":          {Type: genai.TypeNumber, Description: "Total income minus total expense"},
					"currency":           {Type: genai.TypeString, Description: "ISO 4217 currency code (e.g. USD, EUR, GBP). Default to USD if unclear."},
					"statementDateRange": {Type: genai.TypeString, Description: "The extracted date range of the statement, e.g. 'Jan 1 - Jan 31, 2023'"},
				},
				Required: []string{"totalIncome", "totalExpense", "netChange", "currency"},
			},
			"transactions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date":        {Type: genai.TypeString, Description: "Transaction date in YYYY-MM-DD format"},
						"description": {Type: genai.TypeString, Description: "Cleaned description of the transaction"},
						"amount":      {Type: genai.TypeNumber, Description: "Absolute value of the transaction amount"},
						"category":    {Type: genai.TypeString, Description: "Inferred category (e.g. Groceries, Utilities, Salary, Transfer)"},
						"type":        {Type: genai.TypeString, Enum: []string{"income", "expense"}},
					},
					Required: []string{"date", "description", "amount", "category", "type"},
				},
			},
		},
		Required: []string{"summary", "transactions"},
	}
}

const extractionPrompt = `Analyze this bank statement document.
Extract all transactions row by row.

For each transaction:
1. Identify the Date, Description, and Amount.
2. Determine if it is an 'income' (credit/deposit) or 'expense' (debit/withdrawal).
3. Infer a clean Category based on the description (e.g. "Uber" -> "Transport", "Walmart" -> "Groceries/Shopping").
4. Ensure the Amount is a positive number.

Also calculate the summary totals based on the extracted data.
Return the data strictly in JSON format matching the schema provided.
Do not return markdown code blocks.`

// AnalyzeStatement sends the document to Gemini and decodes the response.
// After media-type validation, every failure mode (provider error, empty
// response, malformed JSON) collapses into ErrUnreadableStatement; the cause
// is logged for diagnostics only.
func (p *GeminiProvider) AnalyzeStatement(ctx context.Context, doc Document) (*domain.AnalysisResult, error) {
	if err := ValidateMediaType(doc.MIMEType); err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{
					InlineData: &genai.Blob{
						MIMEType: doc.MIMEType,
						Data:     doc.Data,
					},
				},
				{Text: extractionPrompt},
			},
		},
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
		Temperature:      genai.Ptr(extractionTemperature),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		p.log.Error().Err(err).Str("filename", doc.Filename).Msg("Gemini call failed")
		return nil, ErrUnreadableStatement
	}

	rawText := resp.Text()
	if rawText == "" {
		p.log.Error().Str("filename", doc.Filename).Msg("empty response from model")
		return nil, ErrUnreadableStatement
	}

	result, err := decodeAnalysisResult([]byte(cleanModelJSON(rawText)))
	if err != nil {
		p.log.Error().Err(err).Str("filename", doc.Filename).Msg("model returned malformed JSON")
		return nil, ErrUnreadableStatement
	}

	return result, nil
}

// cleanModelJSON strips markdown fences and surrounding junk when the model
// ignores the no-markdown instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	// Keep only the outermost JSON object if junk remains around it.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
