package cmd

import (
	"fmt"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CompositionRoot struct {
	config Config
	logger *zap.Logger
}

func NewCompositionRoot(config Config, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config: config,
		logger: logger,
	}
}

// NewLogger builds a production zap logger at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("error while setting atomic level to zap logger: %w", err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = atomicLevel

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("error while building zap logger: %w", err)
	}

	return logger, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(services.NewOrderPlacementService(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(c.CreatePlaceOrderCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	return httpadapter.NewRouter(c.CreateHTTPServer(), c.logger)
}

func (c *CompositionRoot) Address() string {
	return fmt.Sprintf("0.0.0.0:%s", c.config.HTTPPort)
}
