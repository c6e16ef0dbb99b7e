package queries

import (
	"context"
	"time"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/infra"
)

type ReservationReadStore interface {
	FindAll(ctx context.Context) ([]*ReservationView, error)
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindAvailability(ctx context.Context, themeID int64, date time.Time) ([]*AvailabilityView, error)
}

type ReservationQueries interface {
	List(ctx context.Context) ([]*ReservationView, error)
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	// Availability reports every time slot, ordered by start time, and whether
	// it is booked for themeID on date. An unknown theme yields all slots free.
	Availability(ctx context.Context, themeID int64, date time.Time) ([]*AvailabilityView, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	rows, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*ReservationView{}
	}
	return rows, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	res, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reservation.ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

func (q *reservationQueriesImpl) Availability(ctx context.Context, themeID int64, date time.Time) ([]*AvailabilityView, error) {
	rows, err := q.repo.FindAvailability(ctx, themeID, date)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*AvailabilityView{}
	}
	return rows, nil
}
