package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
	"github.com/m04kA/Zonomo-CartService/pkg/psqlbuilder"
)

const ordersTable = "orders"

// Repository репозиторий заказов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает неоплаченный заказ
// Если ID не задан, генерируется UUID.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	details, err := json.Marshal(order.BookingDetails)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(ordersTable).
		Columns(
			"id",
			"session_id",
			"customer_email",
			"product_ids",
			"booking_details",
			"subtotal",
			"fee",
			"total",
			"currency",
			"is_paid",
		).
		Values(
			order.ID,
			order.SessionID,
			order.CustomerEmail,
			pq.Array(order.ProductIDs),
			string(details),
			order.Subtotal,
			order.Fee,
			order.Total,
			order.Currency,
			order.IsPaid,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return order, nil
}

// GetByID получает заказ по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"session_id",
		"customer_email",
		"product_ids",
		"booking_details",
		"subtotal",
		"fee",
		"total",
		"currency",
		"is_paid",
		"created_at",
		"updated_at",
	).
		From(ordersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		order                domain.Order
		customerEmail        sql.NullString
		details              []byte
		createdAt, updatedAt sql.NullTime
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&order.ID,
		&order.SessionID,
		&customerEmail,
		pq.Array(&order.ProductIDs),
		&details,
		&order.Subtotal,
		&order.Fee,
		&order.Total,
		&order.Currency,
		&order.IsPaid,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	if customerEmail.Valid {
		order.CustomerEmail = &customerEmail.String
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &order.BookingDetails); err != nil {
			return nil, fmt.Errorf("%w: GetByID - decode booking details: %v", ErrScanRow, err)
		}
	}
	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return &order, nil
}

// Delete удаляет заказ
// Используется для отката, если платежную сессию создать не удалось.
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete(ordersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
