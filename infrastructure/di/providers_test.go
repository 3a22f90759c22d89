package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/services"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/catalog"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/infrastructure/persistence/memory"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/mocks"
)

func TestProvideBusesWireWithoutDuplicates(t *testing.T) {
	logger := zap.NewNop()
	repo := memory.NewPageRepository(logger)
	resolver := services.NewSectionResolver(catalog.Default())
	publisher := new(mocks.MockEventPublisher)
	notifier := new(mocks.MockChangeNotifier)

	// mustRegister panics on a duplicate registration, so a clean
	// construction proves every command and query routes uniquely.
	require.NotPanics(t, func() {
		commandBus := ProvideCommandBus(repo, resolver, publisher, notifier, logger)
		assert.NotNil(t, commandBus)
	})
	require.NotPanics(t, func() {
		queryBus := ProvideQueryBus(repo, resolver, ProvideInMemoryCache(), logger)
		assert.NotNil(t, queryBus)
	})
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	logger := zap.NewNop()
	repo := memory.NewPageRepository(logger)
	resolver := services.NewSectionResolver(catalog.Default())
	publisher := new(mocks.MockEventPublisher)
	notifier := new(mocks.MockChangeNotifier)

	commandBus := ProvideCommandBus(repo, resolver, publisher, notifier, logger)
	assert.Panics(t, func() {
		mustRegister(commandBus.Register(commands.SavePageCommand{}, &CommandHandlerAdapter{}))
	})
}
