package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvloznov/fpa-fixtures/internal/fixture"
	"github.com/dvloznov/fpa-fixtures/internal/gcs"
	"github.com/dvloznov/fpa-fixtures/internal/gcsuploader"
	infraBQ "github.com/dvloznov/fpa-fixtures/internal/infra/bigquery"
	"github.com/dvloznov/fpa-fixtures/internal/logger"
	"github.com/dvloznov/fpa-fixtures/internal/render"
)

func main() {
	log := logger.New()
	store := gcsuploader.NewGCSStorageService()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(log, store)
	case "inspect":
		runInspect(log, store)
	case "upload":
		runUpload(log, store)
	case "load":
		runLoad(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("FP&A Fixture Generator CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  generate  Generate a Budget/Actual fixture dataset")
	fmt.Println("  inspect   Summarize a generated dataset artifact")
	fmt.Println("  upload    Upload a rendered artifact to GCS")
	fmt.Println("  load      Load a generated dataset into BigQuery")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func runGenerate(log zerolog.Logger, store gcs.StorageService) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	years := fs.String("years", "2023,2024,2025", "Comma-separated years to generate")
	seed := fs.Int64("seed", 0, "Variance seed; 0 draws a fresh one per run")
	plan := fs.String("plan", fixture.DefaultPlanID, "Plan ID stamped on Budget records")
	coverage := fs.String("coverage-through", "2025-04", "Last period with Actual records (YYYY-MM)")
	format := fs.String("format", "json", "Output format: json, csv or xlsx")
	output := fs.String("o", "", "Output file or gs:// URI (default stdout; required for xlsx)")
	fs.Parse(os.Args[2:])

	cfg := fixture.DefaultConfig()
	cfg.PlanID = *plan

	parsedYears, err := parseYears(*years)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid -years")
	}
	cfg.Years = parsedYears

	coverageThrough, err := fixture.ParsePeriod(*coverage)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid -coverage-through")
	}
	cfg.CoverageThrough = coverageThrough

	if *format == "xlsx" && *output == "" {
		log.Fatal().Msg("Error: -o is required for xlsx output")
	}

	gen := fixture.NewGenerator(cfg, fixture.NewVariance(*seed))
	ds, err := gen.Generate()
	if err != nil {
		log.Fatal().Err(err).Msg("Generation failed")
	}

	// Render fully in memory first so a failure cannot leave a partial
	// artifact on stdout or disk.
	var buf bytes.Buffer
	switch *format {
	case "json":
		err = render.WriteJSON(&buf, ds)
	case "csv":
		err = render.WriteCSV(&buf, ds)
	case "xlsx":
		err = render.WriteXLSX(&buf, ds)
	default:
		log.Fatal().Str("format", *format).Msg("Unknown output format")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Rendering failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	if err := writeArtifact(ctx, store, *output, buf.Bytes()); err != nil {
		log.Fatal().Err(err).Str("destination", *output).Msg("Writing dataset failed")
	}

	s := ds.Summarize()
	log.Info().
		Int("records", s.TotalRecords).
		Int("budget", s.BudgetRecords).
		Int("actual", s.ActualRecords).
		Str("first_period", s.FirstPeriod).
		Str("last_period", s.LastPeriod).
		Msg("Generated fixture dataset")
}

func runInspect(log zerolog.Logger, store gcs.StorageService) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	file := fs.String("file", "", "Path to a generated JSON artifact")
	gcsURI := fs.String("gcs-uri", "", "GCS URI of a generated JSON artifact")
	fs.Parse(os.Args[2:])

	if (*file == "") == (*gcsURI == "") {
		log.Fatal().Msg("Error: exactly one of -file or -gcs-uri is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	data, err := fetchArtifact(ctx, store, *file, *gcsURI)
	if err != nil {
		log.Fatal().Err(err).Msg("Reading artifact failed")
	}

	ds, err := render.ReadJSON(bytes.NewReader(data))
	if err != nil {
		log.Fatal().Err(err).Msg("Parsing artifact failed")
	}

	s := ds.Summarize()

	fmt.Println("\n=== Dataset Summary ===")
	fmt.Printf("Records:      %d\n", s.TotalRecords)
	fmt.Printf("Budget:       %d\n", s.BudgetRecords)
	fmt.Printf("Actual:       %d\n", s.ActualRecords)
	fmt.Printf("First period: %s\n", s.FirstPeriod)
	fmt.Printf("Last period:  %s\n", s.LastPeriod)

	accounts := make([]string, 0, len(s.TotalByAccount))
	for acc := range s.TotalByAccount {
		accounts = append(accounts, acc)
	}
	sort.Strings(accounts)

	fmt.Printf("\n=== Totals by Account (%d) ===\n", len(accounts))
	for _, acc := range accounts {
		fmt.Printf("%-12s %16.2f\n", acc, s.TotalByAccount[acc])
	}
	fmt.Println()
}

func runUpload(log zerolog.Logger, store gcs.StorageService) {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	bucketName := fs.String("bucket", "", "GCS bucket name")
	objectName := fs.String("object", "", "GCS object name (defaults to filename)")
	filePath := fs.String("file", "", "Path to local artifact file")
	fs.Parse(os.Args[2:])

	if *bucketName == "" || *filePath == "" {
		log.Fatal().Msg("Usage: cli upload -bucket NAME -file PATH")
	}

	if *objectName == "" {
		*objectName = filepath.Base(*filePath)
	}

	ctx := logger.WithContext(context.Background(), log)

	log.Info().
		Str("bucket", *bucketName).
		Str("object", *objectName).
		Str("file", *filePath).
		Msg("Uploading artifact to GCS")

	if err := store.UploadFile(ctx, *bucketName, *objectName, *filePath); err != nil {
		log.Fatal().Err(err).Msg("Upload failed")
	}

	fmt.Printf("Uploaded %s to gs://%s/%s\n", *filePath, *bucketName, *objectName)
}

func runLoad(log zerolog.Logger) {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	file := fs.String("file", "", "Path to a generated JSON artifact")
	project := fs.String("project", "", "BigQuery project (default demo project)")
	dataset := fs.String("dataset", "", "BigQuery dataset (default demo dataset)")
	table := fs.String("table", "", "BigQuery table (default financial_records)")
	fs.Parse(os.Args[2:])

	if *file == "" {
		log.Fatal().Msg("Error: -file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("Reading artifact failed")
	}
	ds, err := render.ReadJSON(bytes.NewReader(data))
	if err != nil {
		log.Fatal().Err(err).Msg("Parsing artifact failed")
	}

	rows, err := infraBQ.RowsFromDataset(ds, time.Now().UTC())
	if err != nil {
		log.Fatal().Err(err).Msg("Mapping records to rows failed")
	}

	target := infraBQ.Target{ProjectID: *project, DatasetID: *dataset, Table: *table}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	log.Info().Int("rows", len(rows)).Msg("Loading fixture dataset into BigQuery")

	if err := infraBQ.InsertRecords(ctx, target, rows); err != nil {
		log.Fatal().Err(err).Msg("Load failed")
	}

	s := ds.Summarize()
	count, err := infraBQ.CountRecords(ctx, target, s.FirstPeriod, s.LastPeriod)
	if err != nil {
		log.Fatal().Err(err).Msg("Verifying load failed")
	}
	if count < int64(len(rows)) {
		// Streaming inserts can lag; report rather than fail hard.
		log.Warn().Int64("counted", count).Int("loaded", len(rows)).Msg("Row count below loaded batch")
	}

	fmt.Printf("Loaded %d records; table now holds %d rows in the period range.\n", len(rows), count)
}

// writeArtifact delivers a fully rendered artifact to its destination:
// stdout when dest is empty, a GCS object for gs:// URIs, a local file
// otherwise. The data is always complete before the first byte leaves.
func writeArtifact(ctx context.Context, store gcs.StorageService, dest string, data []byte) error {
	switch {
	case dest == "":
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writeArtifact: stdout: %w", err)
		}
		return nil
	case strings.HasPrefix(dest, "gs://"):
		bucket, object, err := gcsuploader.ParseURI(dest)
		if err != nil {
			return fmt.Errorf("writeArtifact: %w", err)
		}
		return store.UploadBytes(ctx, bucket, object, data)
	default:
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("writeArtifact: %w", err)
		}
		return nil
	}
}

// fetchArtifact reads a generated artifact from a local path or, when file is
// empty, from GCS.
func fetchArtifact(ctx context.Context, store gcs.StorageService, file, gcsURI string) ([]byte, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("fetchArtifact: %w", err)
		}
		return data, nil
	}
	return store.Fetch(ctx, gcsURI)
}

// parseYears parses a comma-separated year list, e.g. "2023,2024,2025".
func parseYears(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	years := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parseYears: %q: %w", part, err)
		}
		years = append(years, year)
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("parseYears: no years in %q", s)
	}
	return years, nil
}
