package suppliers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suppliermgmt/suppliermgmt/internal/platform/httpx"
)

// Repository persists supplier records.
type Repository interface {
	List(ctx context.Context, filters ListFilters) ([]Supplier, error)
	Get(ctx context.Context, id uuid.UUID) (Supplier, error)
	Create(ctx context.Context, supplier Supplier) (Supplier, error)
	Update(ctx context.Context, id uuid.UUID, supplier Supplier) (Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) (Supplier, error)
	Search(ctx context.Context, query string) ([]Supplier, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Supplier, error)
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository builds a Repository backed by the given pool.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const supplierColumns = `id, name, company_name, product_name, contact_number, email, created_at, updated_at`

func scanSupplier(row pgx.Row) (Supplier, error) {
	var s Supplier
	err := row.Scan(&s.ID, &s.Name, &s.CompanyName, &s.ProductName, &s.ContactNumber, &s.Email, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func collectSuppliers(rows pgx.Rows) ([]Supplier, error) {
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *repository) List(ctx context.Context, filters ListFilters) ([]Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY ` + sortOrder(filters.SortField, filters.SortOrder)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectSuppliers(rows)
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	s, err := scanSupplier(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Supplier{}, httpx.ErrNotFound
	}
	return s, err
}

func (r *repository) Create(ctx context.Context, supplier Supplier) (Supplier, error) {
	query := `INSERT INTO suppliers (id, name, company_name, product_name, contact_number, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
	supplier.ID = uuid.New()
	now := time.Now()
	_, err := r.db.Exec(ctx, query, supplier.ID, supplier.Name, supplier.CompanyName, supplier.ProductName, supplier.ContactNumber, supplier.Email, now)
	if err != nil {
		return Supplier{}, err
	}
	supplier.CreatedAt = now
	supplier.UpdatedAt = now
	return supplier, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, supplier Supplier) (Supplier, error) {
	query := `UPDATE suppliers
		SET name = $1, company_name = $2, product_name = $3, contact_number = $4, email = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + supplierColumns
	s, err := scanSupplier(r.db.QueryRow(ctx, query, supplier.Name, supplier.CompanyName, supplier.ProductName, supplier.ContactNumber, supplier.Email, time.Now(), id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Supplier{}, httpx.ErrNotFound
	}
	return s, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (Supplier, error) {
	query := `DELETE FROM suppliers WHERE id = $1 RETURNING ` + supplierColumns
	s, err := scanSupplier(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Supplier{}, httpx.ErrNotFound
	}
	return s, err
}

func (r *repository) Search(ctx context.Context, query string) ([]Supplier, error) {
	sql := `SELECT ` + supplierColumns + ` FROM suppliers
		WHERE name ILIKE $1 OR company_name ILIKE $1 OR product_name ILIKE $1 OR email ILIKE $1
		ORDER BY name ASC`
	rows, err := r.db.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	return collectSuppliers(rows)
}

func (r *repository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = ANY($1) ORDER BY id`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	return collectSuppliers(rows)
}

// sortOrder restricts sorting to known columns so the sort field from the
// query string is never interpolated verbatim.
func sortOrder(sortField, sortDir string) string {
	dir := "ASC"
	if sortDir == "desc" {
		dir = "DESC"
	}
	switch sortField {
	case "company_name":
		return "company_name " + dir
	case "product_name":
		return "product_name " + dir
	case "contact_number":
		return "contact_number " + dir
	case "email":
		return "email " + dir
	case "created_at":
		return "created_at " + dir
	default:
		return "name " + dir
	}
}
