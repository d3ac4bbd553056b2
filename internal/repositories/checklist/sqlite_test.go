package checklist

import (
	"context"
	"database/sql"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/homebot/internal/database/sqlite"
	"github.com/KirkDiggler/homebot/internal/ordering"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	db      *sql.DB
	repo    Repository
	ctx     context.Context
	testNow time.Time
	ownerID string
	day     string
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	db, err := sqlite.Open(s.ctx, filepath.Join(s.T().TempDir(), "checklist.db"))
	s.Require().NoError(err)
	s.db = db

	repo, err := NewSQLite(&Config{
		DB: s.db,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 17, 0, 0, 0, time.UTC)
	s.ownerID = "test-user-id"
	s.day = "2025-04-05"
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func intPtr(i int) *int {
	return &i
}

func (s *SQLiteRepositoryTestSuite) addAt(content string, position *int, createdAt time.Time) {
	_, err := s.repo.AddItem(s.ctx, &AddItemInput{
		OwnerID:   s.ownerID,
		Content:   content,
		Position:  position,
		Mode:      ordering.InsertModePositional,
		CreatedAt: createdAt,
	})
	s.Require().NoError(err)
}

func (s *SQLiteRepositoryTestSuite) seed(contents ...string) {
	for _, content := range contents {
		s.addAt(content, nil, s.testNow)
	}
}

func (s *SQLiteRepositoryTestSuite) contents() []string {
	output, err := s.repo.ListItems(s.ctx, &ListItemsInput{
		OwnerID: s.ownerID,
	})
	s.Require().NoError(err)

	contents := make([]string, len(output.Items))
	for i, item := range output.Items {
		s.Equal(i+1, item.SortOrder)
		contents[i] = item.Content
	}
	return contents
}

func (s *SQLiteRepositoryTestSuite) remove(position int, at time.Time) {
	_, err := s.repo.RemoveItem(s.ctx, &RemoveItemInput{
		OwnerID:   s.ownerID,
		Position:  position,
		DeletedAt: at,
	})
	s.Require().NoError(err)
}

func (s *SQLiteRepositoryTestSuite) check(position int, day string) error {
	_, err := s.repo.CheckItem(s.ctx, &CheckItemInput{
		OwnerID:   s.ownerID,
		Position:  position,
		Day:       day,
		CheckedAt: s.testNow,
	})
	return err
}

func (s *SQLiteRepositoryTestSuite) TestNewSQLiteRequiresDB() {
	_, err := NewSQLite(nil)
	s.Error(err)

	_, err = NewSQLite(&Config{})
	s.Error(err)
}

func (s *SQLiteRepositoryTestSuite) TestAddItemAppends() {
	output, err := s.repo.AddItem(s.ctx, &AddItemInput{
		OwnerID:   s.ownerID,
		Content:   "drink water",
		Mode:      ordering.InsertModePositional,
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)
	s.NotEmpty(output.Item.ID)
	s.Equal(1, output.Item.SortOrder)

	s.seed("stretch", "read")
	s.Equal([]string{"drink water", "stretch", "read"}, s.contents())
}

func (s *SQLiteRepositoryTestSuite) TestAddItemAtPosition() {
	s.seed("A", "B", "C")

	s.addAt("X", intPtr(1), s.testNow)
	s.Equal([]string{"X", "A", "B", "C"}, s.contents())

	s.addAt("far", intPtr(99), s.testNow)
	s.Equal([]string{"X", "A", "B", "C", "far"}, s.contents())
}

func (s *SQLiteRepositoryTestSuite) TestAddItemAppendMode() {
	s.seed("A", "B")

	_, err := s.repo.AddItem(s.ctx, &AddItemInput{
		OwnerID:   s.ownerID,
		Content:   "X",
		Position:  intPtr(1),
		Mode:      ordering.InsertModeAppend,
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)
	s.Equal([]string{"A", "B", "X"}, s.contents())
}

func (s *SQLiteRepositoryTestSuite) TestRemoveItemSoftDeletes() {
	s.seed("A", "B", "C")

	output, err := s.repo.RemoveItem(s.ctx, &RemoveItemInput{
		OwnerID:   s.ownerID,
		Position:  1,
		DeletedAt: s.testNow,
	})
	s.Require().NoError(err)
	s.Equal("A", output.Item.Content)

	s.Equal([]string{"B", "C"}, s.contents())

	var sortOrder int
	var deletedAt sql.NullInt64
	err = s.db.QueryRowContext(s.ctx,
		"SELECT sort_order, deleted_at FROM checklist_items WHERE id = ?", output.Item.ID).Scan(&sortOrder, &deletedAt)
	s.Require().NoError(err)
	s.Equal(0, sortOrder)
	s.True(deletedAt.Valid)
}

func (s *SQLiteRepositoryTestSuite) TestRemoveItemNotFound() {
	s.seed("A")

	_, err := s.repo.RemoveItem(s.ctx, &RemoveItemInput{
		OwnerID:   s.ownerID,
		Position:  5,
		DeletedAt: s.testNow,
	})
	s.ErrorIs(err, ErrItemNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestMoveItem() {
	s.seed("A", "B", "C")

	output, err := s.repo.MoveItem(s.ctx, &MoveItemInput{
		OwnerID:     s.ownerID,
		OldPosition: 1,
		NewPosition: 3,
	})
	s.Require().NoError(err)
	s.Equal("A", output.Item.Content)
	s.Equal(3, output.Item.SortOrder)
	s.Equal([]string{"B", "C", "A"}, s.contents())

	_, err = s.repo.MoveItem(s.ctx, &MoveItemInput{
		OwnerID:     s.ownerID,
		OldPosition: 3,
		NewPosition: 1,
	})
	s.Require().NoError(err)
	s.Equal([]string{"A", "B", "C"}, s.contents())
}

func (s *SQLiteRepositoryTestSuite) TestMoveItemSamePositionIsNoop() {
	s.seed("A", "B")

	_, err := s.repo.MoveItem(s.ctx, &MoveItemInput{
		OwnerID:     s.ownerID,
		OldPosition: 1,
		NewPosition: 1,
	})
	s.Require().NoError(err)
	s.Equal([]string{"A", "B"}, s.contents())
}

func (s *SQLiteRepositoryTestSuite) TestMoveItemInvalidPosition() {
	s.seed("A", "B")

	_, err := s.repo.MoveItem(s.ctx, &MoveItemInput{
		OwnerID:     s.ownerID,
		OldPosition: 1,
		NewPosition: 3,
	})
	s.ErrorIs(err, ErrInvalidPosition)

	_, err = s.repo.MoveItem(s.ctx, &MoveItemInput{
		OwnerID:     s.ownerID,
		OldPosition: 0,
		NewPosition: 1,
	})
	s.ErrorIs(err, ErrInvalidPosition)
}

func (s *SQLiteRepositoryTestSuite) TestMoveIgnoresDeletedItems() {
	s.seed("A", "B", "C", "D")
	s.remove(2, s.testNow)

	_, err := s.repo.MoveItem(s.ctx, &MoveItemInput{
		OwnerID:     s.ownerID,
		OldPosition: 3,
		NewPosition: 1,
	})
	s.Require().NoError(err)
	s.Equal([]string{"D", "A", "C"}, s.contents())
}

func (s *SQLiteRepositoryTestSuite) TestEditItem() {
	s.seed("A", "B")

	output, err := s.repo.EditItem(s.ctx, &EditItemInput{
		OwnerID:  s.ownerID,
		Position: 1,
		Content:  "A2",
	})
	s.Require().NoError(err)
	s.Equal("A", output.PreviousContent)
	s.Equal("A2", output.Item.Content)
	s.Equal([]string{"A2", "B"}, s.contents())

	_, err = s.repo.EditItem(s.ctx, &EditItemInput{
		OwnerID:  s.ownerID,
		Position: 3,
		Content:  "missing",
	})
	s.ErrorIs(err, ErrItemNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestGetItem() {
	s.seed("A", "B")

	item, err := s.repo.GetItem(s.ctx, &GetItemInput{
		OwnerID:  s.ownerID,
		Position: 2,
	})
	s.Require().NoError(err)
	s.Equal("B", item.Content)
	s.True(s.testNow.Equal(item.CreatedAt))
	s.Nil(item.DeletedAt)

	_, err = s.repo.GetItem(s.ctx, &GetItemInput{
		OwnerID:  s.ownerID,
		Position: 3,
	})
	s.ErrorIs(err, ErrItemNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestCheckAndUncheck() {
	s.seed("A")

	output, err := s.repo.CheckItem(s.ctx, &CheckItemInput{
		OwnerID:   s.ownerID,
		Position:  1,
		Day:       s.day,
		CheckedAt: s.testNow,
	})
	s.Require().NoError(err)
	s.Equal("A", output.Item.Content)
	s.Equal(output.Item.ID, output.Mark.ItemID)
	s.Equal(s.day, output.Mark.Day)

	// Second check on the same day conflicts
	s.ErrorIs(s.check(1, s.day), ErrAlreadyChecked)

	// A different day is independent
	s.NoError(s.check(1, "2025-04-06"))

	_, err = s.repo.UncheckItem(s.ctx, &UncheckItemInput{
		OwnerID:  s.ownerID,
		Position: 1,
		Day:      s.day,
	})
	s.Require().NoError(err)

	// Uncheck then check succeeds again
	s.NoError(s.check(1, s.day))
}

func (s *SQLiteRepositoryTestSuite) TestUncheckNotChecked() {
	s.seed("A")

	_, err := s.repo.UncheckItem(s.ctx, &UncheckItemInput{
		OwnerID:  s.ownerID,
		Position: 1,
		Day:      s.day,
	})
	s.ErrorIs(err, ErrNotChecked)
}

func (s *SQLiteRepositoryTestSuite) TestCheckNotFound() {
	s.ErrorIs(s.check(1, s.day), ErrItemNotFound)

	_, err := s.repo.UncheckItem(s.ctx, &UncheckItemInput{
		OwnerID:  s.ownerID,
		Position: 1,
		Day:      s.day,
	})
	s.ErrorIs(err, ErrItemNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestListItemsForDate() {
	windowEnd := time.Date(2025, 4, 6, 11, 0, 0, 0, time.UTC)

	s.addAt("existing", nil, windowEnd.Add(-48*time.Hour))
	s.addAt("deleted before", nil, windowEnd.Add(-48*time.Hour))
	s.addAt("deleted after", nil, windowEnd.Add(-48*time.Hour))
	s.addAt("created after", nil, windowEnd.Add(time.Hour))
	s.addAt("created at end", nil, windowEnd)

	s.Require().NoError(s.check(1, s.day))

	// "deleted before" sits at position 2
	s.remove(2, windowEnd.Add(-time.Hour))
	// "deleted after" is now at position 2
	s.remove(2, windowEnd.Add(time.Hour))

	output, err := s.repo.ListItemsForDate(s.ctx, &ListItemsForDateInput{
		OwnerID:   s.ownerID,
		Day:       s.day,
		WindowEnd: windowEnd,
	})
	s.Require().NoError(err)

	var contents []string
	checked := map[string]bool{}
	for _, entry := range output.Entries {
		contents = append(contents, entry.Item.Content)
		checked[entry.Item.Content] = entry.Checked
	}

	// Soft deleted rows keep sort_order 0 and list first
	s.Equal([]string{"deleted after", "existing", "created at end"}, contents)
	s.True(checked["existing"])
	s.False(checked["deleted after"])
	s.False(checked["created at end"])
}

func (s *SQLiteRepositoryTestSuite) TestListItemsForDateEmpty() {
	output, err := s.repo.ListItemsForDate(s.ctx, &ListItemsForDateInput{
		OwnerID:   s.ownerID,
		Day:       s.day,
		WindowEnd: s.testNow,
	})
	s.Require().NoError(err)
	s.Empty(output.Entries)
}

func (s *SQLiteRepositoryTestSuite) TestRandomOperationsStayDense() {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		count := len(s.contents())

		switch op := rng.Intn(3); {
		case op == 0 || count == 0:
			s.addAt("item", intPtr(rng.Intn(count+3)), s.testNow)
		case op == 1:
			s.remove(rng.Intn(count)+1, s.testNow)
		default:
			_, err := s.repo.MoveItem(s.ctx, &MoveItemInput{
				OwnerID:     s.ownerID,
				OldPosition: rng.Intn(count) + 1,
				NewPosition: rng.Intn(count) + 1,
			})
			s.Require().NoError(err)
		}

		s.contents()
	}
}
