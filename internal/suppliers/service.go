package suppliers

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service coordinates supplier operations between the HTTP layer and the
// repository. It holds no state between requests.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters ListFilters) ([]Supplier, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (Supplier, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateSupplierRequest) (Supplier, error) {
	supplier := Supplier{
		Name:          req.Name,
		CompanyName:   req.CompanyName,
		ProductName:   req.ProductName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	}

	created, err := s.repo.Create(ctx, supplier)
	if err != nil {
		return Supplier{}, fmt.Errorf("create supplier: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (Supplier, error) {
	supplier := Supplier{
		Name:          req.Name,
		CompanyName:   req.CompanyName,
		ProductName:   req.ProductName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	}

	updated, err := s.repo.Update(ctx, id, supplier)
	if err != nil {
		return Supplier{}, fmt.Errorf("update supplier: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (Supplier, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return Supplier{}, fmt.Errorf("delete supplier: %w", err)
	}
	return deleted, nil
}

func (s *Service) Search(ctx context.Context, query string) ([]Supplier, error) {
	return s.repo.Search(ctx, query)
}

// FindByIDs fetches the records selected for a report, in store order.
func (s *Service) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Supplier, error) {
	return s.repo.FindByIDs(ctx, ids)
}
