//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts a time slot given as HH:MM and returns its id
func CreateTestTimeSlot(t *testing.T, db DBLike, startAt string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO time_slot (start_at) VALUES ($1::time) RETURNING id", startAt).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestTheme(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO theme (name, description, thumbnail) VALUES ($1, $2, $3) RETURNING id",
		name, name+" description", "https://example.com/"+name+".png").Scan(&id)
	require.NoError(t, err)
	return id
}

// inserts a reservation directly, bypassing the past-date rule so rankings
// can be seeded with historical data. date is YYYY-MM-DD.
func CreateTestReservation(t *testing.T, db DBLike, name, date string, timeID, themeID int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO reservation (name, date, time_id, theme_id) VALUES ($1, $2::date, $3, $4) RETURNING id",
		name, date, timeID, themeID).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and resets identities
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
