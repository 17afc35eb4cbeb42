package stats_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-stats/internal/dice"
	dicemock "github.com/KirkDiggler/rpg-stats/internal/dice/mock"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/stats"
	statsmock "github.com/KirkDiggler/rpg-stats/internal/stats/mock"
)

type GeneratorTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	roller *statsmock.MockDiceRoller
	die    *dicemock.MockDie
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.roller = statsmock.NewMockDiceRoller(s.ctrl)
	s.die = dicemock.NewMockDie(s.ctrl)
}

func (s *GeneratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GeneratorTestSuite) TestConstant() {
	gen := stats.Constant(13)

	for range 3 {
		value, err := gen.GenerateValue()
		s.Require().NoError(err)
		s.Assert().Equal(13, value)
	}
}

func (s *GeneratorTestSuite) TestNewRandom() {
	testCases := []struct {
		name    string
		cfg     *stats.RandomConfig
		wantErr string
	}{
		{
			name:    "nil config",
			wantErr: "config is required",
		},
		{
			name:    "missing dependencies",
			cfg:     &stats.RandomConfig{Count: 1, Keep: 1},
			wantErr: "Die: is required; Roller: is required",
		},
		{
			name:    "keep above count",
			cfg:     &stats.RandomConfig{Roller: s.roller, Die: s.die, Count: 2, Keep: 3},
			wantErr: "Keep: must be between 1 and 2",
		},
		{
			name:    "zero count",
			cfg:     &stats.RandomConfig{Roller: s.roller, Die: s.die},
			wantErr: "Count: must be at least 1",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			gen, err := stats.NewRandom(tc.cfg)
			s.Require().Error(err)
			s.Assert().Nil(gen)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.wantErr)
		})
	}
}

func (s *GeneratorTestSuite) TestRandomDelegatesToRoller() {
	gen, err := stats.NewRandom(&stats.RandomConfig{
		Roller: s.roller,
		Die:    s.die,
		Count:  4,
		Keep:   3,
		Floor:  1,
	})
	s.Require().NoError(err)

	s.roller.EXPECT().
		RollKeepReroll(&dice.RollKeepRerollInput{Count: 4, Die: s.die, Keep: 3, Floor: 1}).
		Return(&dice.RollOutput{Total: 14}, nil)

	value, err := gen.GenerateValue()
	s.Require().NoError(err)
	s.Assert().Equal(14, value)
}

func (s *GeneratorTestSuite) TestRandomReturnsRollerError() {
	gen, err := stats.NewRandom(&stats.RandomConfig{Roller: s.roller, Die: s.die, Count: 1, Keep: 1, Floor: 6})
	s.Require().NoError(err)

	s.roller.EXPECT().
		RollKeepReroll(gomock.Any()).
		Return(nil, errors.OutOfRange("floor 6 leaves nothing to roll on d6"))

	_, err = gen.GenerateValue()
	s.Require().Error(err)
	s.Assert().True(errors.IsOutOfRange(err))
}
