package app

import (
	"fmt"

	entriesHTTP "github.com/allisson/journalite/internal/entries/http"
	entriesRepository "github.com/allisson/journalite/internal/entries/repository"
	entriesUsecase "github.com/allisson/journalite/internal/entries/usecase"
)

// EntryRepository returns the entry repository for the configured database driver.
func (c *Container) EntryRepository() (entriesUsecase.EntryRepository, error) {
	var err error
	c.entryRepoInit.Do(func() {
		c.entryRepo, err = c.initEntryRepository()
		if err != nil {
			c.initErrors["entryRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["entryRepo"]; exists {
		return nil, storedErr
	}
	return c.entryRepo, nil
}

// EntryUseCase returns the entry use case instance.
func (c *Container) EntryUseCase() (entriesUsecase.EntryUseCase, error) {
	var err error
	c.entryUseCaseInit.Do(func() {
		c.entryUseCase, err = c.initEntryUseCase()
		if err != nil {
			c.initErrors["entryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["entryUseCase"]; exists {
		return nil, storedErr
	}
	return c.entryUseCase, nil
}

// EntryHandler returns the HTTP handler for journal entry operations.
func (c *Container) EntryHandler() (*entriesHTTP.EntryHandler, error) {
	var err error
	c.entryHandlerInit.Do(func() {
		c.entryHandler, err = c.initEntryHandler()
		if err != nil {
			c.initErrors["entryHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["entryHandler"]; exists {
		return nil, storedErr
	}
	return c.entryHandler, nil
}

// initEntryRepository creates the entry repository based on the database driver.
func (c *Container) initEntryRepository() (entriesUsecase.EntryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for entry repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return entriesRepository.NewPostgreSQLEntryRepository(db), nil
	case "mysql":
		return entriesRepository.NewMySQLEntryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initEntryUseCase creates the entry use case with all its dependencies.
func (c *Container) initEntryUseCase() (entriesUsecase.EntryUseCase, error) {
	logger := c.Logger()

	entryRepo, err := c.EntryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry repository for entry use case: %w", err)
	}

	entryCodec, err := c.EntryCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry codec for entry use case: %w", err)
	}

	baseUseCase := entriesUsecase.NewEntryUseCase(entryRepo, entryCodec, c.ResultCache(), logger)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for entry use case: %w", err)
		}
		return entriesUsecase.NewEntryUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initEntryHandler creates the entry HTTP handler with all its dependencies.
func (c *Container) initEntryHandler() (*entriesHTTP.EntryHandler, error) {
	entryUseCase, err := c.EntryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry use case for entry handler: %w", err)
	}

	logger := c.Logger()

	return entriesHTTP.NewEntryHandler(entryUseCase, logger), nil
}
