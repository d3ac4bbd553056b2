package hangman

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/homebot/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/homebot/internal/common/uuid/mocks"
	"github.com/KirkDiggler/homebot/internal/hangman"
	"github.com/KirkDiggler/homebot/internal/models"
	hangmanRepo "github.com/KirkDiggler/homebot/internal/repositories/hangman"
	gameMocks "github.com/KirkDiggler/homebot/internal/repositories/hangman/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HangmanServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockGameRepo *gameMocks.MockRepository
	mockClock    *mocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	service      Service
	ctx          context.Context

	// Test data
	testTime    time.Time
	testGameID  string
	testGuildID string
	testUserID  string
}

func (s *HangmanServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.testGuildID = "test-guild-id"
	s.testUserID = "test-user-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		GameRepo:      s.mockGameRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *HangmanServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHangmanServiceSuite(t *testing.T) {
	suite.Run(t, new(HangmanServiceTestSuite))
}

func (s *HangmanServiceTestSuite) activeGameInput() *hangmanRepo.GetActiveGameInput {
	return &hangmanRepo.GetActiveGameInput{
		GuildID:      s.testGuildID,
		CreatedAfter: s.testTime.Add(-8 * time.Hour),
	}
}

func (s *HangmanServiceTestSuite) newGame(phrase string, numGuesses *int) *models.HangmanGame {
	return hangman.NewGame(s.testGameID, s.testGuildID, s.testUserID, phrase, numGuesses, s.testTime.Add(-time.Hour))
}

// expectUpdate runs the service's update against stored the way the repository would
func (s *HangmanServiceTestSuite) expectUpdate(stored *models.HangmanGame) {
	s.mockGameRepo.EXPECT().
		UpdateGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *hangmanRepo.UpdateGameInput) (*models.HangmanGame, error) {
			s.Equal(stored.ID, input.GameID)
			s.Require().NoError(input.Update(stored))
			return stored, nil
		})
}

func intPtr(i int) *int {
	return &i
}

func (s *HangmanServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilGameRepo)

	_, err = New(&Config{GameRepo: s.mockGameRepo, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{GameRepo: s.mockGameRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *HangmanServiceTestSuite) TestStartGame() {
	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, s.activeGameInput()).
		Return(nil, hangmanRepo.ErrGameNotFound)
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)
	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *hangmanRepo.SaveGameInput) error {
			s.Equal(s.testGameID, input.Game.ID)
			s.Equal(s.testGuildID, input.Game.GuildID)
			s.Equal(s.testUserID, input.Game.UserID)
			s.Equal("hi there", input.Game.Phrase)
			s.Equal(s.testTime, input.Game.CreatedAt)
			s.False(input.Game.GameOver)
			return nil
		})

	output, err := s.service.StartGame(s.ctx, &StartGameInput{
		GuildID:    s.testGuildID,
		UserID:     s.testUserID,
		Phrase:     "hi there",
		NumGuesses: intPtr(6),
	})
	s.Require().NoError(err)
	s.True(output.Success)
	s.Equal(`\_\_ \_\_\_\_\_`+"\n6/6 guesses remaining", output.Message)
	s.Equal(s.testGameID, output.Game.ID)
}

func (s *HangmanServiceTestSuite) TestStartGameWhileActive() {
	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, s.activeGameInput()).
		Return(s.newGame("existing", nil), nil)

	output, err := s.service.StartGame(s.ctx, &StartGameInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
		Phrase:  "new phrase",
	})
	s.Require().NoError(err)
	s.False(output.Success)
	s.False(output.Invalid)
	s.Equal(MessageGameActive, output.Message)
}

func (s *HangmanServiceTestSuite) TestStartGameRejectsInvalidPhrase() {
	testCases := []struct {
		name       string
		phrase     string
		numGuesses *int
		expected   string
	}{
		{name: "empty", phrase: "   ", expected: MessageEmptyPhrase},
		{name: "non ascii", phrase: "café", expected: string(hangman.ErrNonASCII)},
		{name: "custom emoji", phrase: "hi <:wave:123456>", expected: string(hangman.ErrCustomEmoji)},
		{name: "zero guesses", phrase: "hello", numGuesses: intPtr(0), expected: MessageGuessLimit},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.service.StartGame(s.ctx, &StartGameInput{
				GuildID:    s.testGuildID,
				UserID:     s.testUserID,
				Phrase:     tc.phrase,
				NumGuesses: tc.numGuesses,
			})
			s.Require().NoError(err)
			s.False(output.Success)
			s.True(output.Invalid)
			s.Equal(tc.expected, output.Message)
		})
	}
}

func (s *HangmanServiceTestSuite) TestStartGameStorageError() {
	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, s.activeGameInput()).
		Return(nil, errors.New("connection refused"))

	_, err := s.service.StartGame(s.ctx, &StartGameInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
		Phrase:  "hello",
	})
	s.Error(err)
}

func (s *HangmanServiceTestSuite) TestGuess() {
	game := s.newGame("hangman", intPtr(5))
	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, s.activeGameInput()).
		Return(game, nil)
	s.expectUpdate(game)

	output, err := s.service.Guess(s.ctx, &GuessInput{
		GuildID: s.testGuildID,
		Letters: "z",
	})
	s.Require().NoError(err)
	s.True(output.Success)
	s.Contains(output.Message, "Incorrect guesses: z")
	s.Contains(output.Message, "4/5 guesses remaining")
}

func (s *HangmanServiceTestSuite) TestGuessAppliesToLatestGame() {
	// The lookup returns an older copy than the one the update reads
	snapshot := s.newGame("ab", intPtr(3))
	latest := s.newGame("ab", intPtr(3))
	hangman.Guess(latest, "b")

	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, s.activeGameInput()).
		Return(snapshot, nil)
	s.expectUpdate(latest)

	output, err := s.service.Guess(s.ctx, &GuessInput{
		GuildID: s.testGuildID,
		Letters: "a",
	})
	s.Require().NoError(err)
	s.True(output.Success)
	s.Equal("ab", output.Game.GuessedCharacters)
	s.True(output.Game.GameOver)
	s.Contains(output.Message, "**You Win!!!**")
}

func (s *HangmanServiceTestSuite) TestGuessGameEndedMeanwhile() {
	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, s.activeGameInput()).
		Return(s.newGame("abc", nil), nil)
	s.mockGameRepo.EXPECT().
		UpdateGame(s.ctx, gomock.Any()).
		Return(nil, hangmanRepo.ErrGameOver)

	output, err := s.service.Guess(s.ctx, &GuessInput{
		GuildID: s.testGuildID,
		Letters: "a",
	})
	s.Require().NoError(err)
	s.False(output.Success)
	s.False(output.Invalid)
	s.Equal(MessageNoActiveGame, output.Message)
}

func (s *HangmanServiceTestSuite) TestGuessContention() {
	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, s.activeGameInput()).
		Return(s.newGame("abc", nil), nil)
	s.mockGameRepo.EXPECT().
		UpdateGame(s.ctx, gomock.Any()).
		Return(nil, hangmanRepo.ErrContention)

	_, err := s.service.Guess(s.ctx, &GuessInput{
		GuildID: s.testGuildID,
		Letters: "a",
	})
	s.ErrorIs(err, ErrBusy)
}

func (s *HangmanServiceTestSuite) TestGuessWinsGame() {
	game := s.newGame("abc", intPtr(3))
	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, s.activeGameInput()).
		Return(game, nil)
	s.expectUpdate(game)

	output, err := s.service.Guess(s.ctx, &GuessInput{
		GuildID: s.testGuildID,
		Letters: "ABC",
	})
	s.Require().NoError(err)
	s.True(output.Success)
	s.True(output.Game.GameOver)
	s.Contains(output.Message, "**You Win!!!**")
}

func (s *HangmanServiceTestSuite) TestGuessNoActiveGame() {
	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, s.activeGameInput()).
		Return(nil, hangmanRepo.ErrGameNotFound)

	output, err := s.service.Guess(s.ctx, &GuessInput{
		GuildID: s.testGuildID,
		Letters: "a",
	})
	s.Require().NoError(err)
	s.False(output.Success)
	s.Equal(MessageNoActiveGame, output.Message)
}

func (s *HangmanServiceTestSuite) TestGuessRejectsInvalidLetters() {
	output, err := s.service.Guess(s.ctx, &GuessInput{
		GuildID: s.testGuildID,
		Letters: "ñ",
	})
	s.Require().NoError(err)
	s.False(output.Success)
	s.True(output.Invalid)
	s.Equal(string(hangman.ErrNonASCII), output.Message)

	output, err = s.service.Guess(s.ctx, &GuessInput{
		GuildID: s.testGuildID,
		Letters: " ",
	})
	s.Require().NoError(err)
	s.Equal(MessageEmptyGuess, output.Message)
}

func (s *HangmanServiceTestSuite) TestGuessUpdateError() {
	game := s.newGame("abc", nil)
	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, s.activeGameInput()).
		Return(game, nil)
	s.mockGameRepo.EXPECT().
		UpdateGame(s.ctx, gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.service.Guess(s.ctx, &GuessInput{
		GuildID: s.testGuildID,
		Letters: "a",
	})
	s.Error(err)
}

func (s *HangmanServiceTestSuite) TestGetBoard() {
	game := s.newGame("abc", nil)
	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, s.activeGameInput()).
		Return(game, nil)

	output, err := s.service.GetBoard(s.ctx, &GetBoardInput{
		GuildID: s.testGuildID,
	})
	s.Require().NoError(err)
	s.True(output.Success)
	s.Equal(`\_\_\_`, output.Message)
	s.Equal(game.CreatedAt.Add(8*time.Hour), output.ExpiresAt)
}

func (s *HangmanServiceTestSuite) TestGetBoardNoActiveGame() {
	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, s.activeGameInput()).
		Return(nil, hangmanRepo.ErrGameNotFound)

	output, err := s.service.GetBoard(s.ctx, &GetBoardInput{
		GuildID: s.testGuildID,
	})
	s.Require().NoError(err)
	s.False(output.Success)
	s.Equal(MessageNoActiveGame, output.Message)
}

func (s *HangmanServiceTestSuite) TestFindActiveGameUsesConfiguredTTL() {
	svc, err := New(&Config{
		GameTTL:       time.Hour,
		GameRepo:      s.mockGameRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	s.mockGameRepo.EXPECT().
		GetActiveGame(s.ctx, &hangmanRepo.GetActiveGameInput{
			GuildID:      s.testGuildID,
			CreatedAfter: s.testTime.Add(-time.Hour),
		}).
		Return(nil, hangmanRepo.ErrGameNotFound)

	output, err := svc.FindActiveGame(s.ctx, &FindActiveGameInput{
		GuildID: s.testGuildID,
	})
	s.Require().NoError(err)
	s.Nil(output.Game)
}
