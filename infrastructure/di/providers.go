package di

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands/bus"
	commands_handlers "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands/handlers"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries"
	querybus "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries/bus"
	queries_handlers "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries/handlers"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/services"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/catalog"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/infrastructure/config"
	identitysupabase "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/infrastructure/identity/supabase"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/infrastructure/messaging/eventbridge"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/infrastructure/persistence/dynamodb"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/infrastructure/realtime"
	storagesupabase "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/infrastructure/storage/supabase"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/auth"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvidePageRepository creates the DynamoDB-backed page repository
func ProvidePageRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.PageRepository {
	return dynamodb.NewPageRepository(
		client,
		cfg.DynamoDBTable,
		cfg.SlugIndexName,
		logger,
	)
}

// ProvideCatalog returns the compiled-in default section catalog
func ProvideCatalog() *catalog.Catalog {
	return catalog.Default()
}

// ProvideSectionResolver creates the section resolver
func ProvideSectionResolver(c *catalog.Catalog) *services.SectionResolver {
	return services.NewSectionResolver(c)
}

// ProvideHub creates the realtime hub. The hub doubles as the change
// notifier so committed writes rebroadcast without an extra hop.
func ProvideHub(pageRepo ports.PageRepository, logger *zap.Logger) *realtime.Hub {
	return realtime.NewHub(pageRepo, logger)
}

// ProvideSyncChannel exposes the hub as a sync channel
func ProvideSyncChannel(hub *realtime.Hub) ports.SyncChannel {
	return hub
}

// ProvideChangeNotifier exposes the hub as a change notifier
func ProvideChangeNotifier(hub *realtime.Hub) ports.ChangeNotifier {
	return hub
}

// ProvideEventPublisher creates the EventBridge event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(
		client,
		cfg.EventBusName,
		logger,
	)
}

// ProvideSupabaseClient creates the Supabase client, or nil when no
// Supabase project is configured.
func ProvideSupabaseClient(cfg *config.Config) (*supabase.Client, error) {
	if cfg.SupabaseURL == "" {
		return nil, nil
	}
	return supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAPIKey, nil)
}

// ProvideJWTValidator creates the local token validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
	})
}

// ProvideIdentityService resolves roles through Supabase when it is
// configured, otherwise falls back to local JWT validation.
func ProvideIdentityService(
	client *supabase.Client,
	validator *auth.JWTValidator,
	logger *zap.Logger,
) ports.IdentityService {
	if client != nil {
		return identitysupabase.NewIdentityService(client, logger)
	}
	return &jwtIdentityService{validator: validator}
}

// jwtIdentityService maps locally validated token claims to a role
type jwtIdentityService struct {
	validator *auth.JWTValidator
}

func (s *jwtIdentityService) RoleOf(ctx context.Context, token string) (auth.Role, error) {
	if token == "" {
		return auth.RoleAnonymous, nil
	}
	claims, err := s.validator.ValidateToken(token)
	if err != nil {
		return auth.RoleAnonymous, pkgerrors.NewUnauthorizedError("invalid session token")
	}
	return claims.Role, nil
}

// ProvideBlobStore creates the Supabase-backed asset store. Without a
// configured project uploads are rejected with a clear error.
func ProvideBlobStore(client *supabase.Client, cfg *config.Config, logger *zap.Logger) ports.BlobStore {
	if client == nil {
		return unconfiguredBlobStore{}
	}
	return storagesupabase.NewBlobStore(client, cfg.StorageBucket, logger)
}

type unconfiguredBlobStore struct{}

func (unconfiguredBlobStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	return "", pkgerrors.NewInternalError("asset storage is not configured")
}

// ProvideRateLimiter creates the per-client rate limiter
func ProvideRateLimiter(cfg *config.Config) auth.RateLimiter {
	return auth.NewTokenBucketLimiter(cfg.RateLimitPerMinute, time.Minute)
}

// ProvideInMemoryCache creates the query cache
func ProvideInMemoryCache() ports.Cache {
	return NewInMemoryCache()
}

// mustRegister panics on a duplicate bus registration. That can only
// happen through a wiring mistake, so it should fail at startup rather
// than leave a command or query silently unroutable.
func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	pageRepo ports.PageRepository,
	resolver *services.SectionResolver,
	eventPublisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	saveHandler := commands_handlers.NewSavePageHandler(pageRepo, eventPublisher, notifier, logger)
	mustRegister(commandBus.Register(commands.SavePageCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			saveCmd, ok := cmd.(commands.SavePageCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := saveHandler.Handle(ctx, saveCmd)
			return err
		},
	}))

	upsertHandler := commands_handlers.NewUpsertSectionHandler(pageRepo, resolver, eventPublisher, notifier, logger)
	mustRegister(commandBus.Register(commands.UpsertSectionCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			upsertCmd, ok := cmd.(commands.UpsertSectionCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := upsertHandler.Handle(ctx, upsertCmd)
			return err
		},
	}))

	reconcileHandler := commands_handlers.NewReconcileSectionsHandler(pageRepo, resolver, eventPublisher, notifier, logger)
	mustRegister(commandBus.Register(commands.ReconcileSectionsCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			reconcileCmd, ok := cmd.(commands.ReconcileSectionsCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, _, err := reconcileHandler.Handle(ctx, reconcileCmd)
			return err
		},
	}))

	deleteHandler := commands_handlers.NewDeletePageHandler(pageRepo, eventPublisher, notifier, logger)
	mustRegister(commandBus.Register(commands.DeletePageCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			deleteCmd, ok := cmd.(commands.DeletePageCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return deleteHandler.Handle(ctx, deleteCmd)
		},
	}))

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	pageRepo ports.PageRepository,
	resolver *services.SectionResolver,
	cache ports.Cache,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	getHandler := queries_handlers.NewGetPageHandler(pageRepo, logger)
	mustRegister(queryBus.Register(queries.GetPageBySlugQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.GetPageBySlugQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getHandler.HandleBySlug(ctx, q)
		},
	}))
	mustRegister(queryBus.Register(queries.GetPageByIDQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.GetPageByIDQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getHandler.HandleByID(ctx, q)
		},
	}))

	// The page list is editor tooling; a short cache window is fine
	// there, while slug reads stay uncached so writers see their own
	// committed changes immediately.
	listHandler := queries_handlers.NewListPagesHandler(pageRepo, logger)
	caching := querybus.NewCachingMiddleware(cache, 30)
	mustRegister(queryBus.Register(queries.ListPagesQuery{}, caching.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.ListPagesQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listHandler.Handle(ctx, q)
		},
	})))

	resolveHandler := queries_handlers.NewResolveSectionHandler(pageRepo, resolver, logger)
	mustRegister(queryBus.Register(queries.ResolveSectionQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.ResolveSectionQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return resolveHandler.Handle(ctx, q)
		},
	}))

	return queryBus
}

// ProvideReconcileHandler exposes the reconcile handler directly for
// the bulk seeding CLI, which needs per-slug outcomes.
func ProvideReconcileHandler(
	pageRepo ports.PageRepository,
	resolver *services.SectionResolver,
	eventPublisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *commands_handlers.ReconcileSectionsHandler {
	return commands_handlers.NewReconcileSectionsHandler(pageRepo, resolver, eventPublisher, notifier, logger)
}
