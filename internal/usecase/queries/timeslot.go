package queries

import (
	"context"

	"roomescape/internal/domain/timeslot"
	"roomescape/internal/infra"
)

type TimeSlotReadStore interface {
	FindAll(ctx context.Context) ([]*TimeSlotView, error)
	FindByID(ctx context.Context, id int64) (*TimeSlotView, error)
}

type TimeSlotQueries interface {
	List(ctx context.Context) ([]*TimeSlotView, error)
	GetByID(ctx context.Context, id int64) (*TimeSlotView, error)
}

type timeSlotQueriesImpl struct {
	repo TimeSlotReadStore
}

func NewTimeSlotQueries(repo TimeSlotReadStore) TimeSlotQueries {
	return &timeSlotQueriesImpl{repo: repo}
}

func (q *timeSlotQueriesImpl) List(ctx context.Context) ([]*TimeSlotView, error) {
	slots, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []*TimeSlotView{}
	}
	return slots, nil
}

func (q *timeSlotQueriesImpl) GetByID(ctx context.Context, id int64) (*TimeSlotView, error) {
	slot, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, timeslot.ErrTimeSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}
