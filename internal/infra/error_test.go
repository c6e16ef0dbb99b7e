//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"roomescape/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "plain error", err: errors.New("connection refused"), want: infra.KindDBFailure},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "wrapped foreign key violation", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23503"}), want: infra.KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "23514"}, want: infra.KindDBFailure},
		{name: "explicit kind wins", err: &pgconn.PgError{Code: "23505"}, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
		{name: "nil cause", err: nil, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := infra.WrapRepoErr("failed", tt.err, tt.kind...)
			require.Error(t, got)
			assert.True(t, infra.IsKind(got, tt.want), "got %v", got)

			var repoErr infra.RepositoryError
			require.True(t, errors.As(got, &repoErr))
			assert.Equal(t, tt.want, repoErr.Kind)
			if tt.err != nil {
				assert.ErrorIs(t, got, tt.err)
			}
		})
	}
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("x"), infra.KindDBFailure))
	assert.False(t, infra.IsKind(nil, infra.KindDBFailure))
}
