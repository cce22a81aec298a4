package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/elementmeta/internal/config"
	"github.com/dtroode/elementmeta/internal/logger"
	"github.com/dtroode/elementmeta/internal/model"
	"github.com/dtroode/elementmeta/internal/service"
	leveldbstore "github.com/dtroode/elementmeta/internal/storage/leveldb"
	sink "github.com/dtroode/elementmeta/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	logAppVersion()

	path := cfg.Store.Path
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		printUsage()
		return
	}

	store, err := leveldbstore.Open(path)
	if err != nil {
		logger.Fatal("failed to open local storage database", "path", path, "error", err)
	}
	defer store.Close()

	extractor := service.NewExtractor(store, logger)

	data, err := extractor.ExportJSON(ctx)
	if err != nil {
		logger.Fatal("failed to extract metadata", "error", err)
	}
	fmt.Println(string(data))

	if cfg.Store.LookupKey != "" {
		value, ok, err := extractor.GetValue(ctx, cfg.Store.LookupKey)
		if err != nil {
			logger.Fatal("failed to look up key", "key", cfg.Store.LookupKey, "error", err)
		}
		if ok {
			fmt.Printf("%s = %s\n", cfg.Store.LookupKey, value)
		} else {
			fmt.Printf("%s: not found\n", cfg.Store.LookupKey)
		}
	}

	if cfg.Export.Enabled {
		if err := publishExport(ctx, logger, cfg.Export, data); err != nil {
			logger.Fatal("failed to publish export", "error", err)
		}
	}
}

func publishExport(ctx context.Context, logger *logger.Logger, cfg config.Export, data []byte) error {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	var s model.Sink
	s, err = sink.NewClient(ctx, minioClient, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to initialize export sink: %w", err)
	}

	key := fmt.Sprintf("element-metadata-%s.json", uuid.New())
	if err := s.Upload(ctx, key, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload export: %w", err)
	}

	logger.Info("export published", "bucket", cfg.Bucket, "key", key)
	return nil
}

func printUsage() {
	fmt.Println("Element Desktop local-storage metadata extractor")
	fmt.Println()
	fmt.Println("Usage: elementmeta <path-to-leveldb> (or set STORE_PATH)")
	fmt.Println()
	fmt.Println("Element keeps its local storage database at:")
	fmt.Println(`  Windows: %APPDATA%\Element\Local Storage\leveldb`)
	fmt.Println("  Linux:   ~/.config/Element/Local Storage/leveldb")
	fmt.Println("  macOS:   ~/Library/Application Support/Element/Local Storage/leveldb")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
