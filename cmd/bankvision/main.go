package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/dvloznov/bankvision/internal/demo"
	"github.com/dvloznov/bankvision/internal/domain"
	"github.com/dvloznov/bankvision/internal/extract"
	"github.com/dvloznov/bankvision/internal/insights"
	"github.com/dvloznov/bankvision/internal/logger"
	"github.com/dvloznov/bankvision/internal/render"
	"github.com/dvloznov/bankvision/internal/source"
)

func main() {
	// Optional .env for GEMINI_API_KEY; absence is fine.
	_ = godotenv.Load()

	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze":
		runAnalyze(log)
	case "demo":
		runDemo(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("BankVision CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  bankvision <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  analyze   Analyze a bank statement (PDF or image, local path or gs:// URI)")
	fmt.Println("  demo      Render the dashboard from built-in sample data")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'bankvision <command> -h' for more information on a command.")
}

func runAnalyze(log zerolog.Logger) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	file := fs.String("file", "", "Statement file: local path or gs://bucket/object")
	search := fs.String("search", "", "Filter the list by description, category, or amount")
	typeFilter := fs.String("type", "all", "Filter the list by type: all, income, or expense")
	fs.Parse(os.Args[2:])

	if *file == "" {
		log.Fatal().Msg("Error: -file is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	doc, err := source.Load(ctx, *file)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read statement")
	}

	// Reject unsupported documents before creating the provider: no network
	// call happens for a file we cannot send.
	if err := extract.ValidateMediaType(doc.MIMEType); err != nil {
		log.Fatal().Msg(err.Error())
	}

	provider, err := extract.NewGeminiProvider(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create extraction provider")
	}

	log.Info().Str("file", doc.Filename).Str("media_type", doc.MIMEType).Msg("Analyzing statement")

	result, err := provider.AnalyzeStatement(ctx, doc)
	if err != nil {
		// Already the single user-facing message; the cause was logged by
		// the provider.
		log.Fatal().Msg(err.Error())
	}

	reportDivergence(log, result)
	printDashboard(result, *search, *typeFilter)
}

func runDemo(log zerolog.Logger) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	search := fs.String("search", "", "Filter the list by description, category, or amount")
	typeFilter := fs.String("type", "all", "Filter the list by type: all, income, or expense")
	fs.Parse(os.Args[2:])

	log.Info().Msg("Rendering sample statement")
	printDashboard(demo.Result(time.Now()), *search, *typeFilter)
}

func printDashboard(result *domain.AnalysisResult, search, typeFilter string) {
	fmt.Print(render.Dashboard(result, render.Options{
		SearchTerm: search,
		TypeFilter: insights.TypeFilter(typeFilter),
		Now:        time.Now(),
	}))
}

// reportDivergence logs when the provider's summary totals disagree with the
// line items. The summary is still displayed as-is.
func reportDivergence(log zerolog.Logger, result *domain.AnalysisResult) {
	income, expense := insights.Totals(result.Transactions)
	if math.Abs(income-result.Summary.TotalIncome) > 0.01 || math.Abs(expense-result.Summary.TotalExpense) > 0.01 {
		log.Warn().
			Float64("summary_income", result.Summary.TotalIncome).
			Float64("summary_expense", result.Summary.TotalExpense).
			Float64("line_item_income", income).
			Float64("line_item_expense", expense).
			Msg("Provider summary diverges from line items")
	}
}
