package main

import (
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"caseflow/adapters/excel"
	"caseflow/adapters/photo"
	"caseflow/adapters/postgres"
	"caseflow/app"
	"caseflow/domain/schema"
	"caseflow/internal"
	"caseflow/internal/config"
	"caseflow/internal/errors"
	"caseflow/ports"
	"caseflow/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	logger := internal.NewDefaultLogger()

	dict, err := loadDictionary(cfg)
	if err != nil {
		log.Fatalf("synonym dictionary error: %v", err)
	}

	var store ports.RecordStore
	if cfg.Database.URL != "" {
		db, err := initDatabase(cfg)
		if err != nil {
			log.Fatalf("database error: %v", err)
		}
		defer db.Close()
		store = postgres.NewRecordRepository(db)
		logger.Info("record store enabled")
	} else {
		logger.Warn("DATABASE_URL not set, running without a record store")
	}

	fetcher := photo.NewHTTPFetcher(cfg.Import.PhotoTimeout)
	imports := app.NewImportService(excel.NewGridReader(), fetcher, dict, cfg.Import, logger)

	httpApp := ui.NewApp(imports, store, fetcher, cfg.Import, logger)
	if err := httpApp.Serve(cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func loadDictionary(cfg *config.Config) (schema.Synonyms, error) {
	dict := schema.DefaultSynonyms()
	if cfg.Import.SynonymsFile == "" {
		return dict, nil
	}
	overrides, err := config.LoadSynonymOverrides(cfg.Import.SynonymsFile)
	if err != nil {
		return nil, err
	}
	return dict.Merge(overrides), nil
}

func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}
	if err := postgres.EnsureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}
