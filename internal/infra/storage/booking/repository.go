package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

const tableBookings = "bookings"

// insertBatchSize строк в одном INSERT: 8 параметров на строку, лимит PostgreSQL 65535 параметров
var insertBatchSize = 1000

var bookingColumns = []string{
	"id",
	"program_title",
	"program_type",
	"number_of_rooms",
	"booking_status",
	"start_date",
	"end_date",
	"created_at",
}

// Repository репозиторий бронирований в PostgreSQL
// Весь набор бронирований хранится в таблице bookings, изменяется только целиком через ReplaceAll
type Repository struct {
	db DB
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// ListAll возвращает все бронирования, упорядоченные по дате начала
// Внутри транзакции строки блокируются (FOR UPDATE) до её завершения
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		OrderBy("start_date ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// ReplaceAll атомарно заменяет весь набор бронирований
// Если в контексте есть транзакция, использует её, иначе открывает собственную
func (r *Repository) ReplaceAll(ctx context.Context, bookings []*domain.Booking) error {
	if dbmetrics.IsInTransaction(ctx) {
		return r.replaceAll(ctx, dbmetrics.GetExecutor(ctx, r.db), bookings)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - begin: %w", ErrTransaction, err)
	}

	if err := r.replaceAll(ctx, tx, bookings); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: ReplaceAll - commit: %w", ErrTransaction, err)
	}

	return nil
}

func (r *Repository) replaceAll(ctx context.Context, executor DBExecutor, bookings []*domain.Booking) error {
	query, args, err := psqlbuilder.Delete(tableBookings).ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute delete: %w", ErrExecQuery, err)
	}

	for from := 0; from < len(bookings); from += insertBatchSize {
		to := min(from+insertBatchSize, len(bookings))
		if err := r.insertBatch(ctx, executor, bookings[from:to]); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) insertBatch(ctx context.Context, executor DBExecutor, bookings []*domain.Booking) error {
	insertBuilder := psqlbuilder.Insert(tableBookings).Columns(bookingColumns...)
	for _, b := range bookings {
		insertBuilder = insertBuilder.Values(
			b.ID,
			b.ProgramTitle,
			string(b.ProgramType),
			b.NumberOfRooms,
			string(b.Status),
			b.StartDate,
			b.EndDate,
			b.CreatedAt,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var programType, status string

	err := row.Scan(
		&booking.ID,
		&booking.ProgramTitle,
		&programType,
		&booking.NumberOfRooms,
		&status,
		&booking.StartDate,
		&booking.EndDate,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.ProgramType = domain.ProgramType(programType)
	booking.Status = domain.BookingStatus(status)

	return &booking, nil
}

// scanBookings сканирует строки результата запроса в список бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan booking: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
