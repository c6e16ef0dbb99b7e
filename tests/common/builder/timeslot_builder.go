//go:build unit || e2e

package builder

import (
	"roomescape/internal/domain/timeslot"
	reqdto "roomescape/internal/handler/dto/request"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"
	"roomescape/internal/usecase/queries"
)

type TimeSlotBuilder struct {
	ID     int64
	Hour   int
	Minute int
}

func NewTimeSlotBuilder() *TimeSlotBuilder {
	return &TimeSlotBuilder{
		ID:     1,
		Hour:   10,
		Minute: 0,
	}
}

func (b *TimeSlotBuilder) With(mutate func(*TimeSlotBuilder)) *TimeSlotBuilder {
	mutate(b)
	return b
}

func (b *TimeSlotBuilder) StartAt() timeslot.StartAt {
	s, err := timeslot.NewStartAt(b.Hour, b.Minute)
	if err != nil {
		panic(err)
	}
	return s
}

// Build methods
func (b *TimeSlotBuilder) BuildDomain() *timeslot.TimeSlot {
	return timeslot.Reconstruct(b.ID, b.StartAt())
}

func (b *TimeSlotBuilder) BuildInfra() sqlc.TimeSlot {
	return sqlc.TimeSlot{
		ID:      b.ID,
		StartAt: pgconv.TimeOfDayToPgtype(b.Hour, b.Minute),
	}
}

func (b *TimeSlotBuilder) BuildCreateRequestDTO() reqdto.CreateTimeSlotRequest {
	return reqdto.CreateTimeSlotRequest{StartAt: b.StartAt().String()}
}

func (b *TimeSlotBuilder) BuildView() *queries.TimeSlotView {
	return &queries.TimeSlotView{
		ID:      b.ID,
		StartAt: b.StartAt().String(),
	}
}
