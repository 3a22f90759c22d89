package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/events"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/auth"
)

// MockPageRepository is a mock implementation of ports.PageRepository
type MockPageRepository struct {
	mock.Mock
}

func (m *MockPageRepository) Save(ctx context.Context, page *entities.Page) error {
	args := m.Called(ctx, page)
	return args.Error(0)
}

func (m *MockPageRepository) GetByID(ctx context.Context, id valueobjects.PageID) (*entities.Page, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Page), args.Error(1)
}

func (m *MockPageRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*entities.Page, error) {
	args := m.Called(ctx, slug, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Page), args.Error(1)
}

func (m *MockPageRepository) ListAll(ctx context.Context) ([]*entities.Page, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Page), args.Error(1)
}

func (m *MockPageRepository) UpsertSection(ctx context.Context, pageID string, sectionID string, patch valueobjects.SectionPatch) (*entities.Page, error) {
	args := m.Called(ctx, pageID, sectionID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Page), args.Error(1)
}

func (m *MockPageRepository) Delete(ctx context.Context, id valueobjects.PageID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBatch(ctx context.Context, evts []events.DomainEvent) error {
	args := m.Called(ctx, evts)
	return args.Error(0)
}

// MockChangeNotifier is a mock implementation of ports.ChangeNotifier
type MockChangeNotifier struct {
	mock.Mock
}

func (m *MockChangeNotifier) PageChanged(ctx context.Context, slug string) {
	m.Called(ctx, slug)
}

// MockSyncChannel is a mock implementation of ports.SyncChannel
type MockSyncChannel struct {
	mock.Mock
}

func (m *MockSyncChannel) Subscribe(slug string, observer ports.PageObserver) (ports.Unsubscribe, error) {
	args := m.Called(slug, observer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.Unsubscribe), args.Error(1)
}

// MockIdentityService is a mock implementation of ports.IdentityService
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) RoleOf(ctx context.Context, token string) (auth.Role, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(auth.Role), args.Error(1)
}

// MockBlobStore is a mock implementation of ports.BlobStore
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, path, data, contentType)
	return args.String(0), args.Error(1)
}
