package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
	"roomescape/internal/infra/readstore"
	"roomescape/internal/infra/repository"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	baseBackoff = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, newPgTx(pgxTx, u.q))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, baseBackoff)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	timeSlotRepo    shared.TimeSlotRepository
	themeRepo       shared.ThemeRepository
	reservationRepo shared.ReservationRepository
	commandReads    shared.CommandReads
}

func newPgTx(dbtx sqlc.DBTX, q *sqlc.Queries) *pgTx {
	return &pgTx{dbtx: dbtx, q: q}
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) TimeSlots() shared.TimeSlotRepository {
	if t.timeSlotRepo == nil {
		t.timeSlotRepo = repository.NewTimeSlotRepository(t.q)
	}
	return t.timeSlotRepo
}

func (t *pgTx) Themes() shared.ThemeRepository {
	if t.themeRepo == nil {
		t.themeRepo = repository.NewThemeRepository(t.q)
	}
	return t.themeRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.q)
	}
	return t.reservationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			timeSlots: readstore.NewTimeSlotReadStore(t.q, t.dbtx),
			themes:    readstore.NewThemeReadStore(t.q, t.dbtx),
		}
	}
	return t.commandReads
}

// commandReads serves write-side lookups from the read stores, bound to the
// open transaction.
type commandReads struct {
	timeSlots *readstore.TimeSlotReadStore
	themes    *readstore.ThemeReadStore
}

func (r *commandReads) TimeSlotByID(ctx context.Context, id int64) (*timeslot.TimeSlot, error) {
	view, err := r.timeSlots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	startAt, err := timeslot.ParseStartAt(view.StartAt)
	if err != nil {
		return nil, err
	}
	return timeslot.Reconstruct(view.ID, startAt), nil
}

func (r *commandReads) ThemeByID(ctx context.Context, id int64) (*theme.Theme, error) {
	view, err := r.themes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return theme.Reconstruct(view.ID, view.Name, view.Description, view.Thumbnail), nil
}

func (r *commandReads) TimeSlotInUse(ctx context.Context, id int64) (bool, error) {
	return r.timeSlots.InUse(ctx, id)
}

func (r *commandReads) ThemeInUse(ctx context.Context, id int64) (bool, error) {
	return r.themes.InUse(ctx, id)
}
