package repository

import (
	"context"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/infra"
	"roomescape/internal/infra/repository/converter"
	sqlc "roomescape/internal/infra/sqlc/generated"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

// Create relies on uq_reservation_slot for double-booking; a clash surfaces as
// KindDuplicateKey.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error) {
	id, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) (int64, error) {
	n, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return n, nil
}
