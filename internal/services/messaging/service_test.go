package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/homebot/internal/dice"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := New(&Config{
		Roller: dice.New(&dice.Config{Seed: 42}),
	})
	s.Require().NoError(err)

	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNeutralMessages() {
	testCases := []struct {
		errorType ErrorType
		expected  string
	}{
		{errorType: ErrorTypeInternal, expected: MessageInternal},
		{errorType: ErrorTypeUnknownCommand, expected: MessageUnknownCommand},
		{errorType: ErrorTypeGuildOnly, expected: MessageGuildOnly},
		{errorType: ErrorTypeBusy, expected: MessageBusy},
		{errorType: "something_new", expected: MessageInternal},
	}

	for _, tc := range testCases {
		s.Run(string(tc.errorType), func() {
			output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
				ErrorType: tc.errorType,
			})
			s.Require().NoError(err)
			s.Equal(tc.expected, output.Message)
			s.Equal(ToneNeutral, output.Tone)
		})
	}
}

func (s *MessagingServiceTestSuite) TestFunnyMessagesComeFromVariants() {
	for i := 0; i < 20; i++ {
		output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
			ErrorType: ErrorTypeInternal,
			Tone:      ToneFunny,
		})
		s.Require().NoError(err)
		s.Contains(funnyMessages[ErrorTypeInternal], output.Message)
		s.Equal(ToneFunny, output.Tone)
	}
}

func (s *MessagingServiceTestSuite) TestConfiguredToneIsDefault() {
	svc, err := New(&Config{
		Roller: dice.New(&dice.Config{Seed: 7}),
		Tone:   ToneFunny,
	})
	s.Require().NoError(err)

	output, err := svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeBusy})
	s.Require().NoError(err)
	s.Equal(ToneFunny, output.Tone)
	s.Contains(funnyMessages[ErrorTypeBusy], output.Message)
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetErrorMessage(s.ctx, nil)
	s.Error(err)
}
