package todo

import (
	"context"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/KirkDiggler/homebot/internal/ordering"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    *redisRepository
	ctx     context.Context
	testNow time.Time
	ownerID string
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.ownerID = "test-user-id"
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) add(content string, position *int, mode ordering.InsertMode) {
	_, err := s.repo.AddItem(s.ctx, &AddItemInput{
		OwnerID:   s.ownerID,
		Content:   content,
		Position:  position,
		Mode:      mode,
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) contents() []string {
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

func (s *RedisRepositoryTestSuite) seed(contents ...string) {
	for _, content := range contents {
		s.add(content, nil, ordering.InsertModePositional)
	}
}

func intPtr(i int) *int {
	return &i
}

func (s *RedisRepositoryTestSuite) TestAddItemAppends() {
	output, err := s.repo.AddItem(s.ctx, &AddItemInput{
		OwnerID:   s.ownerID,
		Content:   "buy milk",
		Mode:      ordering.InsertModePositional,
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)
	s.NotEmpty(output.Item.ID)
	s.Equal(1, output.Item.SortOrder)
	s.Equal(s.ownerID, output.Item.OwnerID)
	s.True(s.testNow.Equal(output.Item.CreatedAt))

	s.seed("walk dog", "call mom")
	s.Equal([]string{"buy milk", "walk dog", "call mom"}, s.contents())
}

func (s *RedisRepositoryTestSuite) TestAddItemAtPositionShifts() {
	s.seed("A", "B", "C")

	s.add("X", intPtr(2), ordering.InsertModePositional)
	s.Equal([]string{"A", "X", "B", "C"}, s.contents())

	s.add("Y", intPtr(1), ordering.InsertModePositional)
	s.Equal([]string{"Y", "A", "X", "B", "C"}, s.contents())

	s.add("Z", intPtr(6), ordering.InsertModePositional)
	s.Equal([]string{"Y", "A", "X", "B", "C", "Z"}, s.contents())
}

func (s *RedisRepositoryTestSuite) TestAddItemOutOfRangeAppends() {
	s.seed("A", "B")

	s.add("far", intPtr(10), ordering.InsertModePositional)
	s.add("zero", intPtr(0), ordering.InsertModePositional)
	s.Equal([]string{"A", "B", "far", "zero"}, s.contents())
}

func (s *RedisRepositoryTestSuite) TestAddItemAppendModeIgnoresPosition() {
	s.seed("A", "B")

	s.add("X", intPtr(1), ordering.InsertModeAppend)
	s.Equal([]string{"A", "B", "X"}, s.contents())
}

func (s *RedisRepositoryTestSuite) TestRemoveItemCompacts() {
	s.seed("A", "B", "C", "D")

	output, err := s.repo.RemoveItem(s.ctx, &RemoveItemInput{
		OwnerID:  s.ownerID,
		Position: 2,
	})
	s.Require().NoError(err)
	s.Equal("B", output.Item.Content)
	s.Equal(2, output.Item.SortOrder)

	s.Equal([]string{"A", "C", "D"}, s.contents())

	// The record is hard deleted
	s.False(s.mr.Exists(itemKeyPrefix + output.Item.ID))
}

func (s *RedisRepositoryTestSuite) TestRemoveItemNotFound() {
	s.seed("A")

	_, err := s.repo.RemoveItem(s.ctx, &RemoveItemInput{
		OwnerID:  s.ownerID,
		Position: 2,
	})
	s.ErrorIs(err, ErrItemNotFound)
	s.Equal([]string{"A"}, s.contents())
}

func (s *RedisRepositoryTestSuite) TestMoveItemForward() {
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
}

func (s *RedisRepositoryTestSuite) TestMoveItemBackward() {
	s.seed("A", "B", "C", "D")

	_, err := s.repo.MoveItem(s.ctx, &MoveItemInput{
		OwnerID:     s.ownerID,
		OldPosition: 4,
		NewPosition: 2,
	})
	s.Require().NoError(err)

	s.Equal([]string{"A", "D", "B", "C"}, s.contents())
}

func (s *RedisRepositoryTestSuite) TestMoveItemSamePosition() {
	s.seed("A", "B")

	_, err := s.repo.MoveItem(s.ctx, &MoveItemInput{
		OwnerID:     s.ownerID,
		OldPosition: 2,
		NewPosition: 2,
	})
	s.Require().NoError(err)
	s.Equal([]string{"A", "B"}, s.contents())
}

func (s *RedisRepositoryTestSuite) TestMoveItemInvalidPosition() {
	s.seed("A", "B", "C")

	testCases := []struct {
		name        string
		oldPosition int
		newPosition int
	}{
		{name: "old too large", oldPosition: 4, newPosition: 1},
		{name: "new too large", oldPosition: 1, newPosition: 4},
		{name: "old zero", oldPosition: 0, newPosition: 1},
		{name: "new negative", oldPosition: 1, newPosition: -1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.MoveItem(s.ctx, &MoveItemInput{
				OwnerID:     s.ownerID,
				OldPosition: tc.oldPosition,
				NewPosition: tc.newPosition,
			})
			s.ErrorIs(err, ErrInvalidPosition)
		})
	}

	s.Equal([]string{"A", "B", "C"}, s.contents())
}

func (s *RedisRepositoryTestSuite) TestEditItem() {
	s.seed("A", "B")

	output, err := s.repo.EditItem(s.ctx, &EditItemInput{
		OwnerID:  s.ownerID,
		Position: 2,
		Content:  "B2",
	})
	s.Require().NoError(err)
	s.Equal("B", output.PreviousContent)
	s.Equal("B2", output.Item.Content)
	s.Equal(2, output.Item.SortOrder)

	s.Equal([]string{"A", "B2"}, s.contents())
}

func (s *RedisRepositoryTestSuite) TestEditItemNotFound() {
	_, err := s.repo.EditItem(s.ctx, &EditItemInput{
		OwnerID:  s.ownerID,
		Position: 1,
		Content:  "nothing here",
	})
	s.ErrorIs(err, ErrItemNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetItem() {
	s.seed("A", "B")

	item, err := s.repo.GetItem(s.ctx, &GetItemInput{
		OwnerID:  s.ownerID,
		Position: 2,
	})
	s.Require().NoError(err)
	s.Equal("B", item.Content)
	s.Equal(2, item.SortOrder)

	_, err = s.repo.GetItem(s.ctx, &GetItemInput{
		OwnerID:  s.ownerID,
		Position: 3,
	})
	s.ErrorIs(err, ErrItemNotFound)
}

func (s *RedisRepositoryTestSuite) TestListItemsEmpty() {
	output, err := s.repo.ListItems(s.ctx, &ListItemsInput{
		OwnerID: s.ownerID,
	})
	s.Require().NoError(err)
	s.Empty(output.Items)
}

func (s *RedisRepositoryTestSuite) TestOwnersAreIsolated() {
	s.seed("A", "B")

	_, err := s.repo.AddItem(s.ctx, &AddItemInput{
		OwnerID:  "other-user-id",
		Content:  "other",
		Position: intPtr(1),
		Mode:     ordering.InsertModePositional,
	})
	s.Require().NoError(err)

	s.Equal([]string{"A", "B"}, s.contents())

	output, err := s.repo.ListItems(s.ctx, &ListItemsInput{
		OwnerID: "other-user-id",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Items, 1)
	s.Equal(1, output.Items[0].SortOrder)
}

func (s *RedisRepositoryTestSuite) TestRandomOperationsStayDense() {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 300; i++ {
		count := len(s.contents())

		switch op := rng.Intn(3); {
		case op == 0 || count == 0:
			s.add("item", intPtr(rng.Intn(count+3)), ordering.InsertModePositional)
		case op == 1:
			_, err := s.repo.RemoveItem(s.ctx, &RemoveItemInput{
				OwnerID:  s.ownerID,
				Position: rng.Intn(count) + 1,
			})
			s.Require().NoError(err)
		default:
			_, err := s.repo.MoveItem(s.ctx, &MoveItemInput{
				OwnerID:     s.ownerID,
				OldPosition: rng.Intn(count) + 1,
				NewPosition: rng.Intn(count) + 1,
			})
			s.Require().NoError(err)
		}

		// contents asserts positions run 1..N
		s.contents()
	}
}

func (s *RedisRepositoryTestSuite) TestTransactGivesUpUnderContention() {
	listKey := listKeyPrefix + s.ownerID
	attempts := 0

	err := s.repo.transact(s.ctx, listKey, func(tx *redis.Tx) error {
		attempts++

		// Another connection touches the watched key before EXEC
		s.Require().NoError(s.client.ZAdd(s.ctx, listKey, redis.Z{Score: 1, Member: "intruder-" + strconv.Itoa(attempts)}).Err())

		_, err := tx.TxPipelined(s.ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(s.ctx, "unused", "value", 0)
			return nil
		})
		return err
	})

	s.ErrorIs(err, ErrContention)
	s.Equal(maxTxRetries, attempts)
	s.False(s.mr.Exists("unused"))
}
