//go:build unit

package theme_test

import (
	"testing"

	"roomescape/internal/domain/theme"
	"roomescape/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTheme(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		th, err := theme.NewTheme(" Prison Break ", "escape the cell", "https://img.example/pb.png")
		require.NoError(t, err)

		assert.Equal(t, int64(0), th.ID())
		assert.Equal(t, "Prison Break", th.Name())
		assert.Equal(t, "escape the cell", th.Description())
		assert.Equal(t, "https://img.example/pb.png", th.Thumbnail())
	})

	tests := []struct {
		name        string
		themeName   string
		description string
		thumbnail   string
		errIs       error
	}{
		{name: "blank name", themeName: "  ", description: "d", thumbnail: "t", errIs: theme.ErrBlankName},
		{name: "empty description", themeName: "A", description: "", thumbnail: "t", errIs: theme.ErrBlankDescription},
		{name: "blank thumbnail", themeName: "A", description: "d", thumbnail: "\t", errIs: theme.ErrBlankThumbnail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := theme.NewTheme(tt.themeName, tt.description, tt.thumbnail)
			require.Error(t, err)
			assert.Nil(t, th)
			assert.ErrorIs(t, err, tt.errIs)
			assert.True(t, errs.IsInvalidInput(err))
		})
	}
}
