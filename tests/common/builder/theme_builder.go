//go:build unit || e2e

package builder

import (
	"roomescape/internal/domain/theme"
	reqdto "roomescape/internal/handler/dto/request"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/usecase/queries"
)

type ThemeBuilder struct {
	ID          int64
	Name        string
	Description string
	Thumbnail   string
}

func NewThemeBuilder() *ThemeBuilder {
	return &ThemeBuilder{
		ID:          1,
		Name:        "Prison Break",
		Description: "Escape the cell in 60 minutes",
		Thumbnail:   "https://example.com/prison.png",
	}
}

func (b *ThemeBuilder) With(mutate func(*ThemeBuilder)) *ThemeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ThemeBuilder) BuildDomain() *theme.Theme {
	return theme.Reconstruct(b.ID, b.Name, b.Description, b.Thumbnail)
}

func (b *ThemeBuilder) BuildInfra() sqlc.Theme {
	return sqlc.Theme{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Thumbnail:   b.Thumbnail,
	}
}

func (b *ThemeBuilder) BuildCreateRequestDTO() reqdto.CreateThemeRequest {
	return reqdto.CreateThemeRequest{
		Name:        b.Name,
		Description: b.Description,
		Thumbnail:   b.Thumbnail,
	}
}

func (b *ThemeBuilder) BuildView() *queries.ThemeView {
	return &queries.ThemeView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Thumbnail:   b.Thumbnail,
	}
}

func (b *ThemeBuilder) BuildRankedView(count int64) *queries.RankedThemeView {
	return &queries.RankedThemeView{
		ThemeView:        *b.BuildView(),
		ReservationCount: count,
	}
}
