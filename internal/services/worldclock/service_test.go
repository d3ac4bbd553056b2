package worldclock

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/KirkDiggler/homebot/internal/common/clock/mocks"
	"github.com/KirkDiggler/homebot/internal/models"
	worldclockRepo "github.com/KirkDiggler/homebot/internal/repositories/worldclock"
	worldclockMocks "github.com/KirkDiggler/homebot/internal/repositories/worldclock/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WorldClockServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockClockRepo *worldclockMocks.MockRepository
	mockClock     *mocks.MockClock
	service       Service
	ctx           context.Context

	// Test data
	testTime    time.Time
	testGuildID string
}

func (s *WorldClockServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClockRepo = worldclockMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 5, 12, 0, 0, 0, time.UTC)
	s.testGuildID = "test-guild-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		ClockRepo: s.mockClockRepo,
		Clock:     s.mockClock,
		Resolver:  &Resolver{},
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *WorldClockServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWorldClockServiceSuite(t *testing.T) {
	suite.Run(t, new(WorldClockServiceTestSuite))
}

func (s *WorldClockServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilClockRepo)

	_, err = New(&Config{ClockRepo: s.mockClockRepo})
	s.ErrorIs(err, ErrNilClock)
}

func (s *WorldClockServiceTestSuite) TestAddClockCanonicalizesZone() {
	s.mockClockRepo.EXPECT().
		AddClock(s.ctx, &worldclockRepo.AddClockInput{
			GuildID:   s.testGuildID,
			Timezone:  "America/New_York",
			Label:     "Mom",
			CreatedAt: s.testTime,
		}).
		Return(&models.WorldClock{ID: "clock-id", Timezone: "America/New_York", Label: "Mom"}, nil)

	output, err := s.service.AddClock(s.ctx, &AddClockInput{
		GuildID:  s.testGuildID,
		Timezone: "america/new_york",
		Label:    " Mom ",
	})
	s.Require().NoError(err)
	s.True(output.Success)
	s.Equal("Timezone added: America/New_York with label Mom", output.Message)
}

func (s *WorldClockServiceTestSuite) TestAddClockWithoutLabel() {
	s.mockClockRepo.EXPECT().
		AddClock(s.ctx, gomock.Any()).
		Return(&models.WorldClock{ID: "clock-id", Timezone: "Asia/Tokyo"}, nil)

	output, err := s.service.AddClock(s.ctx, &AddClockInput{
		GuildID:  s.testGuildID,
		Timezone: "Asia/Tokyo",
	})
	s.Require().NoError(err)
	s.Equal("Timezone added: Asia/Tokyo", output.Message)
}

func (s *WorldClockServiceTestSuite) TestAddClockDuplicate() {
	s.mockClockRepo.EXPECT().
		AddClock(s.ctx, gomock.Any()).
		Return(nil, worldclockRepo.ErrClockExists)

	output, err := s.service.AddClock(s.ctx, &AddClockInput{
		GuildID:  s.testGuildID,
		Timezone: "asia/tokyo",
	})
	s.Require().NoError(err)
	s.False(output.Success)
	s.Equal("Timezone already exists: Asia/Tokyo", output.Message)
}

func (s *WorldClockServiceTestSuite) TestAddClockInvalidZone() {
	output, err := s.service.AddClock(s.ctx, &AddClockInput{
		GuildID:  s.testGuildID,
		Timezone: "Narnia/Cair_Paravel",
	})
	s.Require().NoError(err)
	s.False(output.Success)
	s.Equal(MessageInvalidTimezone, output.Message)
}

func (s *WorldClockServiceTestSuite) TestAddClockStorageError() {
	s.mockClockRepo.EXPECT().
		AddClock(s.ctx, gomock.Any()).
		Return(nil, errors.New("disk full"))

	_, err := s.service.AddClock(s.ctx, &AddClockInput{
		GuildID:  s.testGuildID,
		Timezone: "UTC",
	})
	s.Error(err)
}

func (s *WorldClockServiceTestSuite) TestRemoveClock() {
	s.mockClockRepo.EXPECT().
		RemoveClock(s.ctx, &worldclockRepo.RemoveClockInput{
			GuildID:  s.testGuildID,
			Timezone: "Europe/London",
		}).
		Return(nil)

	output, err := s.service.RemoveClock(s.ctx, &RemoveClockInput{
		GuildID:  s.testGuildID,
		Timezone: "europe/london",
	})
	s.Require().NoError(err)
	s.True(output.Success)
	s.Equal("Timezone Europe/London removed", output.Message)
}

func (s *WorldClockServiceTestSuite) TestRemoveClockNotFound() {
	s.mockClockRepo.EXPECT().
		RemoveClock(s.ctx, gomock.Any()).
		Return(worldclockRepo.ErrClockNotFound)

	output, err := s.service.RemoveClock(s.ctx, &RemoveClockInput{
		GuildID:  s.testGuildID,
		Timezone: "Europe/London",
	})
	s.Require().NoError(err)
	s.False(output.Success)
	s.Equal(MessageTimezoneNotFound, output.Message)
}

func (s *WorldClockServiceTestSuite) TestUpdateLabel() {
	s.mockClockRepo.EXPECT().
		UpdateLabel(s.ctx, &worldclockRepo.UpdateLabelInput{
			GuildID:  s.testGuildID,
			Timezone: "Europe/London",
			Label:    "Office",
		}).
		Return(nil)

	output, err := s.service.UpdateLabel(s.ctx, &UpdateLabelInput{
		GuildID:  s.testGuildID,
		Timezone: "Europe/London",
		Label:    "Office",
	})
	s.Require().NoError(err)
	s.True(output.Success)
	s.Equal(MessageLabelUpdated, output.Message)
}

func (s *WorldClockServiceTestSuite) TestUpdateLabelNotFound() {
	s.mockClockRepo.EXPECT().
		UpdateLabel(s.ctx, gomock.Any()).
		Return(worldclockRepo.ErrClockNotFound)

	output, err := s.service.UpdateLabel(s.ctx, &UpdateLabelInput{
		GuildID:  s.testGuildID,
		Timezone: "Europe/London",
		Label:    "Office",
	})
	s.Require().NoError(err)
	s.False(output.Success)
	s.Equal(MessageTimezoneNotFound, output.Message)
}

func (s *WorldClockServiceTestSuite) TestGetClock() {
	s.mockClockRepo.EXPECT().
		GetClock(s.ctx, &worldclockRepo.GetClockInput{
			GuildID:  s.testGuildID,
			Timezone: "America/New_York",
		}).
		Return(&models.WorldClock{Timezone: "America/New_York", Label: "Mom"}, nil)

	output, err := s.service.GetClock(s.ctx, &GetClockInput{
		GuildID:  s.testGuildID,
		Timezone: "America/New_York",
	})
	s.Require().NoError(err)
	s.True(output.Success)
	s.Equal("Mom | America/New_York: **Saturday April 05 08:00 AM**", output.Message)
}

func (s *WorldClockServiceTestSuite) TestListClocks() {
	s.mockClockRepo.EXPECT().
		ListClocks(s.ctx, &worldclockRepo.ListClocksInput{GuildID: s.testGuildID}).
		Return(&worldclockRepo.ListClocksOutput{
			Clocks: []*models.WorldClock{
				{Timezone: "Asia/Tokyo"},
				{Timezone: "America/Los_Angeles", Label: "Home"},
			},
		}, nil)

	output, err := s.service.ListClocks(s.ctx, &ListClocksInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.True(output.Success)
	s.Equal("Asia/Tokyo: **Saturday April 05 09:00 PM**\n"+
		"Home | America/Los_Angeles: **Saturday April 05 05:00 AM**", output.Message)
}

func (s *WorldClockServiceTestSuite) TestListClocksEmpty() {
	s.mockClockRepo.EXPECT().
		ListClocks(s.ctx, gomock.Any()).
		Return(&worldclockRepo.ListClocksOutput{}, nil)

	output, err := s.service.ListClocks(s.ctx, &ListClocksInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(MessageNoClocks, output.Message)
}
