// Package container provides dependency injection for the pacs2mt
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/pacs2mt/internal/config"
	"fjacquet/pacs2mt/internal/converter"
	"fjacquet/pacs2mt/internal/logging"
	"fjacquet/pacs2mt/internal/server"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	converter *converter.Converter
}

// NewContainer creates and wires all application dependencies, building the
// logger from the configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.NewLogger(cfg))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	conv := converter.NewConverter(logger)

	logger.Debug("Container initialized successfully",
		logging.F("log_level", cfg.Log.Level),
		logging.F(logging.FieldAddress, cfg.Server.Addr()))

	return &Container{
		logger:    logger,
		config:    cfg,
		converter: conv,
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

// GetConverter returns the shared converter.
func (c *Container) GetConverter() *converter.Converter {
	return c.converter
}

// NewServer builds the HTTP server around the shared converter. cfg is
// usually GetConfig().Server, possibly with command line overrides.
func (c *Container) NewServer(cfg config.ServerConfig, version string) *server.Server {
	return server.NewServer(cfg, c.converter, c.logger, version)
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
