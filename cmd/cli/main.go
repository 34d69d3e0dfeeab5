package main

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"caseflow/adapters/excel"
	"caseflow/adapters/photo"
	"caseflow/adapters/postgres"
	"caseflow/app"
	"caseflow/domain/record"
	"caseflow/domain/schema"
	"caseflow/internal"
	"caseflow/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "caseflow-cli",
		Short: "Caseflow CLI for importing case-record spreadsheets",
	}

	rootCmd.AddCommand(
		newImportCmd(),
		newTemplateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newImportCmd() *cobra.Command {
	var persist bool
	var asJSON bool
	var photosDir string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Run a spreadsheet through the import pipeline",
		Long: `Validate and parse a case-record spreadsheet, resolving photos.

Example: caseflow-cli import cases.xlsx --photos-dir ./photos --persist`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			result, err := runImport(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}

			if photosDir != "" {
				if err := savePhotos(result, photosDir); err != nil {
					return err
				}
			}

			if persist {
				if err := persistBatch(cmd.Context(), cfg, result); err != nil {
					return err
				}
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printSummary(result)
			if !result.Success {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&persist, "persist", false, "save parsed records to DATABASE_URL on full success")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full processing result as JSON")
	cmd.Flags().StringVar(&photosDir, "photos-dir", "", "directory to write resolved photos into")
	return cmd
}

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template [file]",
		Short: "Write an empty import template workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := make([]string, 0)
			for _, f := range schema.Fields() {
				headers = append(headers, f.String())
			}
			data, err := excel.BuildWorkbook([][]string{headers})
			if err != nil {
				return err
			}
			return os.WriteFile(args[0], data, 0o644)
		},
	}
}

func runImport(ctx context.Context, cfg *config.Config, path string) (record.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return record.Result{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return record.Result{}, err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = excel.MIMEXLSX
	}

	fetcher := photo.NewHTTPFetcher(cfg.Import.PhotoTimeout)
	svc := app.NewImportService(excel.NewGridReader(), fetcher, nil, cfg.Import, internal.DefaultLogger)

	return svc.Run(ctx, app.Upload{
		Filename: filepath.Base(path),
		MIMEType: mimeType,
		Size:     info.Size(),
		Content:  f,
	}), nil
}

func persistBatch(ctx context.Context, cfg *config.Config, result record.Result) error {
	if !result.Success {
		return fmt.Errorf("batch has %d errors, refusing to persist", len(result.Errors))
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.EnsureSchema(db); err != nil {
		return err
	}
	store := postgres.NewRecordRepository(db)
	if err := store.SaveBatch(ctx, result.ImportID, result.Records); err != nil {
		return err
	}
	fmt.Printf("Persisted %d records (import %s)\n", len(result.Records), result.ImportID)
	return nil
}

func savePhotos(result record.Result, dir string) error {
	if len(result.Photos) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, asset := range result.Photos {
		if err := os.WriteFile(filepath.Join(dir, asset.Filename), asset.Content, 0o644); err != nil {
			return err
		}
	}
	fmt.Printf("Wrote %d photos to %s\n", len(result.Photos), dir)
	return nil
}

func printSummary(result record.Result) {
	status := "OK"
	if !result.Success {
		status = "FAILED"
	}
	fmt.Printf("Import %s: %s\n", result.ImportID, status)
	fmt.Printf("  records:  %d\n", len(result.Records))
	fmt.Printf("  photos:   %d\n", len(result.Photos))
	fmt.Printf("  warnings: %d\n", len(result.Warnings))
	fmt.Printf("  errors:   %d\n", len(result.Errors))
	for _, w := range result.Warnings {
		fmt.Printf("  warn: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Printf("  error: %s\n", e)
	}
	if s := result.Summary; s != nil && s.RowsParsed > 0 {
		fmt.Printf("  mean age: %.1f (median %.1f)\n", s.AgeMean, s.AgeMedian)
	}
}
