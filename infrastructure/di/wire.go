//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands/bus"
	commands_handlers "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands/handlers"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	querybus "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries/bus"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/services"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/catalog"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/infrastructure/config"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/infrastructure/realtime"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/auth"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *zap.Logger
	Catalog          *catalog.Catalog
	Resolver         *services.SectionResolver
	PageRepo         ports.PageRepository
	EventPublisher   ports.EventPublisher
	Hub              *realtime.Hub
	SyncChannel      ports.SyncChannel
	ChangeNotifier   ports.ChangeNotifier
	IdentityService  ports.IdentityService
	BlobStore        ports.BlobStore
	JWTValidator     *auth.JWTValidator
	RateLimiter      auth.RateLimiter
	Cache            ports.Cache
	CommandBus       *bus.CommandBus
	QueryBus         *querybus.QueryBus
	ReconcileHandler *commands_handlers.ReconcileSectionsHandler
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvidePageRepository,
	ProvideCatalog,
	ProvideSectionResolver,
	ProvideHub,
	ProvideSyncChannel,
	ProvideChangeNotifier,
	ProvideEventPublisher,
	ProvideSupabaseClient,
	ProvideJWTValidator,
	ProvideIdentityService,
	ProvideBlobStore,
	ProvideRateLimiter,
	ProvideInMemoryCache,
	ProvideCommandBus,
	ProvideQueryBus,
	ProvideReconcileHandler,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
