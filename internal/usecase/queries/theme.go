package queries

import (
	"context"
	"time"

	"roomescape/internal/domain/theme"
	"roomescape/internal/infra"
	"roomescape/internal/pkg/errs"
)

const MaxTopThemes = 100

var (
	ErrInvalidTopCount  = errs.NewKind("count must be a positive integer", errs.ErrInvalidInput)
	ErrInvalidDateRange = errs.NewKind("endAt must not be before startAt", errs.ErrInvalidInput)
)

// TopThemesQuery asks for the most booked themes with a reservation date in
// [StartDate, EndDate]. Dates are civil dates.
type TopThemesQuery struct {
	Count     int
	StartDate time.Time
	EndDate   time.Time
}

type ThemeReadStore interface {
	FindAll(ctx context.Context) ([]*ThemeView, error)
	FindByID(ctx context.Context, id int64) (*ThemeView, error)
	FindTop(ctx context.Context, startDate, endDate time.Time, limit int32) ([]*RankedThemeView, error)
}

// RankingCache holds recent TopThemes answers. Misses and failures both
// report ok=false.
type RankingCache interface {
	GetTopThemes(ctx context.Context, q TopThemesQuery) ([]*RankedThemeView, bool)
	SetTopThemes(ctx context.Context, q TopThemesQuery, themes []*RankedThemeView)
	InvalidateTopThemes(ctx context.Context)
}

type ThemeQueries interface {
	List(ctx context.Context) ([]*ThemeView, error)
	GetByID(ctx context.Context, id int64) (*ThemeView, error)
	Top(ctx context.Context, q TopThemesQuery) ([]*RankedThemeView, error)
}

type themeQueriesImpl struct {
	repo  ThemeReadStore
	cache RankingCache
}

func NewThemeQueries(repo ThemeReadStore, cache RankingCache) ThemeQueries {
	return &themeQueriesImpl{repo: repo, cache: cache}
}

func (q *themeQueriesImpl) List(ctx context.Context) ([]*ThemeView, error) {
	themes, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if themes == nil {
		themes = []*ThemeView{}
	}
	return themes, nil
}

func (q *themeQueriesImpl) GetByID(ctx context.Context, id int64) (*ThemeView, error) {
	th, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, theme.ErrThemeNotFound
		}
		return nil, err
	}
	return th, nil
}

func (q *themeQueriesImpl) Top(ctx context.Context, tq TopThemesQuery) ([]*RankedThemeView, error) {
	if tq.Count < 1 {
		return nil, ErrInvalidTopCount
	}
	if tq.Count > MaxTopThemes {
		tq.Count = MaxTopThemes
	}
	if tq.EndDate.Before(tq.StartDate) {
		return nil, ErrInvalidDateRange
	}

	if cached, ok := q.cache.GetTopThemes(ctx, tq); ok {
		return cached, nil
	}

	// #nosec G115 -- Count is bounded by MaxTopThemes
	ranked, err := q.repo.FindTop(ctx, tq.StartDate, tq.EndDate, int32(tq.Count))
	if err != nil {
		return nil, err
	}
	if ranked == nil {
		ranked = []*RankedThemeView{}
	}

	q.cache.SetTopThemes(ctx, tq, ranked)
	return ranked, nil
}
