package commands

import (
	"context"

	"roomescape/internal/domain/theme"
	"roomescape/internal/infra"
	"roomescape/internal/usecase/queries"
	"roomescape/internal/usecase/shared"
)

type CreateThemeRequest struct {
	Name        string
	Description string
	Thumbnail   string
}

type CreateThemeResult struct {
	ThemeID int64
}

type ThemeCommands interface {
	CreateTheme(ctx context.Context, req CreateThemeRequest) (*CreateThemeResult, error)
	DeleteTheme(ctx context.Context, id int64) error
}

type themeUseCaseImpl struct {
	uow     shared.UnitOfWork
	ranking queries.RankingCache
}

func NewThemeCommands(uow shared.UnitOfWork, ranking queries.RankingCache) ThemeCommands {
	return &themeUseCaseImpl{uow: uow, ranking: ranking}
}

func (uc *themeUseCaseImpl) CreateTheme(ctx context.Context, req CreateThemeRequest) (*CreateThemeResult, error) {
	th, err := theme.NewTheme(req.Name, req.Description, req.Thumbnail)
	if err != nil {
		return nil, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Themes().Create(ctx, tx.DB(), th)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateThemeResult{ThemeID: createdID}, nil
}

// DeleteTheme drops cached rankings once a row is actually removed.
func (uc *themeUseCaseImpl) DeleteTheme(ctx context.Context, id int64) error {
	var removed int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inUse, derr := tx.Reads().ThemeInUse(ctx, id)
		if derr != nil {
			return derr
		}
		if inUse {
			return theme.ErrThemeInUse
		}

		n, derr := tx.Themes().Delete(ctx, tx.DB(), id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return theme.ErrThemeInUse
			}
			return derr
		}
		removed = n
		return nil
	})
	if err != nil {
		return err
	}
	if removed > 0 {
		uc.ranking.InvalidateTopThemes(ctx)
	}
	return nil
}
