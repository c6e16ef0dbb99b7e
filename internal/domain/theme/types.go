package theme

import "roomescape/internal/pkg/errs"

var (
	ErrBlankName        = errs.NewKind("theme name must not be blank", errs.ErrInvalidInput)
	ErrBlankDescription = errs.NewKind("theme description must not be blank", errs.ErrInvalidInput)
	ErrBlankThumbnail   = errs.NewKind("theme thumbnail must not be blank", errs.ErrInvalidInput)
	ErrThemeNotFound    = errs.NewKind("theme not found", errs.ErrNotFound)
	ErrThemeInUse       = errs.NewKind("theme is still referenced by reservations", errs.ErrConflict)
)
