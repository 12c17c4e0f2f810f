package product

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
	"github.com/m04kA/Zonomo-CartService/pkg/psqlbuilder"
)

const productsTable = "products"

var productColumns = []string{
	"id",
	"name",
	"description",
	"price",
	"duration",
	"category",
	"service_location",
	"service_type",
	"availability",
	"price_id",
	"stripe_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query, args, err := psqlbuilder.Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}

	return product, nil
}

// GetByIDs получает услуги по списку ID
// Каждая найденная услуга возвращается один раз, порядок не гарантируется.
// Отсутствующие ID просто не попадают в результат.
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return []*domain.Product{}, nil
	}

	query, args, err := psqlbuilder.Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0, len(ids))
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("GetByIDs: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return products, nil
}

// scanProduct сканирует строку и разбирает расписание из jsonb
func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		product                                  domain.Product
		description, category, location, svcType sql.NullString
		priceID, stripeID                        sql.NullString
		availabilityRaw                          []byte
		createdAt, updatedAt                     sql.NullTime
	)

	err := row.Scan(
		&product.ID,
		&product.Name,
		&description,
		&product.Price,
		&product.Duration,
		&category,
		&location,
		&svcType,
		&availabilityRaw,
		&priceID,
		&stripeID,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	product.Description = description.String
	product.Category = category.String
	product.ServiceLocation = location.String
	product.ServiceType = svcType.String
	if priceID.Valid {
		product.PriceID = &priceID.String
	}
	if stripeID.Valid {
		product.StripeID = &stripeID.String
	}
	product.CreatedAt = createdAt.Time
	product.UpdatedAt = updatedAt.Time

	product.Availability = domain.Availability{}
	if len(availabilityRaw) > 0 {
		if err := json.Unmarshal(availabilityRaw, &product.Availability); err != nil {
			return nil, fmt.Errorf("%w: product id=%s: %v", ErrDecodeAvailability, product.ID, err)
		}
	}

	return &product, nil
}
