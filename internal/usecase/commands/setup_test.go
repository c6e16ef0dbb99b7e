//go:build unit

package commands_test

import (
	"context"
	"testing"

	"roomescape/internal/usecase/shared"
	queriesmock "roomescape/tests/mock/queries"
	sharedmock "roomescape/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	timeSlots    *sharedmock.MockTimeSlotRepository
	themes       *sharedmock.MockThemeRepository
	reservations *sharedmock.MockReservationRepository
	ranking      *queriesmock.MockRankingCache
}

// newTxMocks wires a unit of work whose Within runs fn against a mocked Tx.
func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		timeSlots:    sharedmock.NewMockTimeSlotRepository(ctrl),
		themes:       sharedmock.NewMockThemeRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		ranking:      queriesmock.NewMockRankingCache(ctrl),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().TimeSlots().Return(m.timeSlots).AnyTimes()
	m.tx.EXPECT().Themes().Return(m.themes).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()

	return m
}
