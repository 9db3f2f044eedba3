// Package container provides dependency injection for the receipt-extract
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"github.com/g-caf/bootleg-expensify-sub000/internal/batch"
	"github.com/g-caf/bootleg-expensify-sub000/internal/catalog"
	"github.com/g-caf/bootleg-expensify-sub000/internal/classifier"
	"github.com/g-caf/bootleg-expensify-sub000/internal/config"
	"github.com/g-caf/bootleg-expensify-sub000/internal/dedup"
	"github.com/g-caf/bootleg-expensify-sub000/internal/engine"
	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
	"github.com/g-caf/bootleg-expensify-sub000/internal/report"
	"github.com/g-caf/bootleg-expensify-sub000/internal/resolver"
)

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation; all fields are private and
// exposed only through getters.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	catalog    *catalog.Catalog
	classifier *classifier.Classifier
	engine     *engine.Engine
	dedup      *dedup.Deduplicator
	batch      *batch.Processor
	report     *report.Writer
}

// NewContainer creates and wires all application dependencies. This is the
// main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Logger first, everything else logs through it.
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	catalogStore := catalog.NewStore(cfg.Catalog.File, logger)
	cat, err := catalogStore.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading pattern catalog: %w", err)
	}

	cls := classifier.New(cat, logger)

	vendorResolver := resolver.NewVendorResolver(cat, logger)
	filenameResolver := resolver.NewFilenameResolver(cat, logger)
	amountResolver := resolver.NewAmountResolver(logger)
	dateResolver := resolver.NewDateResolver(logger)
	if cfg.Extraction.FutureToleranceHours > 0 {
		dateResolver = dateResolver.WithFutureTolerance(
			time.Duration(cfg.Extraction.FutureToleranceHours) * time.Hour)
	}

	dd := dedup.New(cfg.Dedup.Capacity, cfg.Dedup.CleanupThreshold, cfg.Dedup.RetentionFraction, logger)

	eng := engine.New(cls, vendorResolver, filenameResolver, amountResolver, dateResolver, dd,
		engine.Options{FilenameFallback: cfg.Extraction.FilenameFallback}, logger)

	proc := batch.NewProcessor(eng, logger)
	rep := report.NewWriter([]rune(cfg.CSV.Delimiter)[0], logger)

	logger.Info("Container initialized successfully",
		logging.Field{Key: "profiles", Value: len(cat.Profiles)},
		logging.Field{Key: "filename_fallback", Value: cfg.Extraction.FilenameFallback})

	return &Container{
		logger:     logger,
		config:     cfg,
		catalog:    cat,
		classifier: cls,
		engine:     eng,
		dedup:      dd,
		batch:      proc,
		report:     rep,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCatalog returns the compiled pattern catalog.
func (c *Container) GetCatalog() *catalog.Catalog {
	return c.catalog
}

// GetClassifier returns the receipt classifier.
func (c *Container) GetClassifier() *classifier.Classifier {
	return c.classifier
}

// GetEngine returns the extraction engine.
func (c *Container) GetEngine() *engine.Engine {
	return c.engine
}

// GetDeduplicator returns the fingerprint cache.
func (c *Container) GetDeduplicator() *dedup.Deduplicator {
	return c.dedup
}

// GetBatchProcessor returns the directory batch processor.
func (c *Container) GetBatchProcessor() *batch.Processor {
	return c.batch
}

// GetReportWriter returns the CSV report writer.
func (c *Container) GetReportWriter() *report.Writer {
	return c.report
}

// Close performs cleanup of container resources. Provided for future
// extensibility; nothing needs explicit cleanup today.
func (c *Container) Close() error {
	c.logger.Info("Container closed")
	return nil
}
