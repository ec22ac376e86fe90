package mocks

import (
	"context"

	"github.com/ecofinds/ecofinds-api/internal/domain"
	"github.com/ecofinds/ecofinds-api/internal/store"
)

// MockProductStore implements store.ProductStore for testing
type MockProductStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, product *domain.Product) error
	ListFn    func(ctx context.Context) ([]domain.Product, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Product, error)
	UpdateFn  func(ctx context.Context, product *domain.Product) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for default implementation
	Products map[int64]*domain.Product
	NextID   int64
	Err      error // when set, every default operation fails with it
}

// Ensure MockProductStore implements store.ProductStore
var _ store.ProductStore = (*MockProductStore)(nil)

// NewMockProductStore creates a new mock store with initialized defaults
func NewMockProductStore() *MockProductStore {
	return &MockProductStore{
		Products: make(map[int64]*domain.Product),
		NextID:   1,
	}
}

// Seed inserts a product directly, bypassing validation, and returns it.
func (m *MockProductStore) Seed(p domain.Product) *domain.Product {
	if p.ID == 0 {
		p.ID = m.NextID
		m.NextID++
	} else if p.ID >= m.NextID {
		m.NextID = p.ID + 1
	}
	m.Products[p.ID] = &p
	return m.Products[p.ID]
}

// Create implements the ProductStore interface
func (m *MockProductStore) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, product)
	}
	if m.Err != nil {
		return m.Err
	}

	product.ID = m.NextID
	m.NextID++
	copied := *product
	m.Products[product.ID] = &copied
	return nil
}

// List implements the ProductStore interface
func (m *MockProductStore) List(ctx context.Context) ([]domain.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	products := make([]domain.Product, 0, len(m.Products))
	for _, p := range m.Products {
		products = append(products, *p)
	}
	return products, nil
}

// GetByID implements the ProductStore interface
func (m *MockProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	p, ok := m.Products[id]
	if !ok {
		return nil, store.ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

// Update implements the ProductStore interface
func (m *MockProductStore) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, product)
	}
	if m.Err != nil {
		return m.Err
	}

	if _, ok := m.Products[product.ID]; !ok {
		return store.ErrProductNotFound
	}
	copied := *product
	m.Products[product.ID] = &copied
	return nil
}

// Delete implements the ProductStore interface
func (m *MockProductStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return m.Err
	}

	if _, ok := m.Products[id]; !ok {
		return store.ErrProductNotFound
	}
	delete(m.Products, id)
	return nil
}
