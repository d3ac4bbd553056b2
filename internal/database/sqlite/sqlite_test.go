package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SQLiteTestSuite struct {
	suite.Suite
	db  *sql.DB
	ctx context.Context
}

func (s *SQLiteTestSuite) SetupTest() {
	s.ctx = context.Background()

	db, err := Open(s.ctx, filepath.Join(s.T().TempDir(), "bot.db"))
	s.Require().NoError(err)
	s.db = db
}

func (s *SQLiteTestSuite) TearDownTest() {
	s.db.Close()
}

func TestSQLiteTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteTestSuite))
}

func (s *SQLiteTestSuite) TestOpenRequiresPath() {
	_, err := Open(s.ctx, "  ")
	s.Error(err)
}

func (s *SQLiteTestSuite) TestMigrationsCreateTables() {
	for _, table := range []string{"checklist_items", "checklist_checks", "world_clocks"} {
		var name string
		err := s.db.QueryRowContext(s.ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		s.Require().NoError(err, table)
		s.Equal(table, name)
	}
}

func (s *SQLiteTestSuite) TestMigrateIsIdempotent() {
	s.NoError(Migrate(s.ctx, s.db))
}

func (s *SQLiteTestSuite) TestIsUniqueViolation() {
	insert := "INSERT INTO world_clocks (id, guild_id, timezone, created_at) VALUES (?, ?, ?, ?)"

	_, err := s.db.ExecContext(s.ctx, insert, "a", "guild", "UTC", 1)
	s.Require().NoError(err)

	_, err = s.db.ExecContext(s.ctx, insert, "b", "guild", "UTC", 2)
	s.Require().Error(err)
	s.True(IsUniqueViolation(err))

	s.False(IsUniqueViolation(nil))
	s.False(IsUniqueViolation(errors.New("disk I/O error")))
}

func (s *SQLiteTestSuite) TestWithTxRollsBackOnError() {
	errBoom := errors.New("boom")

	err := WithTx(s.ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(s.ctx,
			"INSERT INTO world_clocks (id, guild_id, timezone, created_at) VALUES ('a', 'guild', 'UTC', 1)")
		s.Require().NoError(err)
		return errBoom
	})
	s.ErrorIs(err, errBoom)

	var count int
	s.Require().NoError(s.db.QueryRowContext(s.ctx, "SELECT COUNT(*) FROM world_clocks").Scan(&count))
	s.Equal(0, count)
}

func (s *SQLiteTestSuite) TestMillisRoundTrip() {
	now := time.Date(2025, 4, 5, 10, 30, 15, 123000000, time.FixedZone("PDT", -7*3600))

	s.True(now.Equal(FromMillis(ToMillis(now))))
	s.Equal(time.UTC, FromMillis(ToMillis(now)).Location())
}
