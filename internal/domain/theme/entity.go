package theme

import "strings"

type Theme struct {
	id          int64
	name        string
	description string
	thumbnail   string
}

func NewTheme(name, description, thumbnail string) (*Theme, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	thumbnail = strings.TrimSpace(thumbnail)

	if name == "" {
		return nil, ErrBlankName
	}
	if description == "" {
		return nil, ErrBlankDescription
	}
	if thumbnail == "" {
		return nil, ErrBlankThumbnail
	}

	return &Theme{
		name:        name,
		description: description,
		thumbnail:   thumbnail,
	}, nil
}

func Reconstruct(id int64, name, description, thumbnail string) *Theme {
	return &Theme{
		id:          id,
		name:        name,
		description: description,
		thumbnail:   thumbnail,
	}
}

func (t *Theme) ID() int64           { return t.id }
func (t *Theme) Name() string        { return t.name }
func (t *Theme) Description() string { return t.description }
func (t *Theme) Thumbnail() string   { return t.thumbnail }
