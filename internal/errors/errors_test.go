package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "keep 5 exceeds count 4",
			expected: "OUT_OF_RANGE: keep 5 exceeds count 4",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "stat value 9 not in given array",
			expected: "INVALID_ARGUMENT: stat value 9 not in given array",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.InvalidArgument("total cost is 28, should be 27").
		WithMeta("actual", 28).
		WithMeta("expected", 27)

	s.Assert().Equal(28, err.Meta["actual"])
	s.Assert().Equal(27, err.Meta["expected"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("read failed")
	wrapped := errors.Wrap(baseErr, "failed to load ruleset")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load ruleset", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.OutOfRange("floor below die minimum").WithMeta("floor", -1)
	wrapped := errors.Wrap(baseErr, "failed to roll")

	s.Assert().Equal(errors.CodeOutOfRange, wrapped.Code)
	s.Assert().Equal("failed to roll", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Equal(-1, errors.GetMeta(wrapped)["floor"])
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("no such file")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeNotFound, "ruleset not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("ruleset not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.OutOfRangef("keep %d exceeds count %d", 5, 4)
	s.Assert().Equal(errors.CodeOutOfRange, err.Code)
	s.Assert().Equal("keep 5 exceeds count 4", err.Message)

	err2 := errors.NotFoundf("unknown die kind %q", "loaded")
	s.Assert().Equal(errors.CodeNotFound, err2.Code)
	s.Assert().Equal(`unknown die kind "loaded"`, err2.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.OutOfRange("test")
	err2 := errors.OutOfRange("other")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	rangeErr := errors.OutOfRange("test")
	invalidErr := errors.InvalidArgument("test")
	wrappedErr := errors.Wrap(rangeErr, "wrapped")

	s.Assert().True(errors.IsOutOfRange(rangeErr))
	s.Assert().True(errors.IsOutOfRange(wrappedErr))
	s.Assert().False(errors.IsOutOfRange(invalidErr))

	s.Assert().True(errors.IsInvalidArgument(invalidErr))
	s.Assert().False(errors.IsInvalidArgument(rangeErr))
	s.Assert().True(errors.IsNotFound(errors.NotFound("x")))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPreconditionf("x %d", 1)))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.InvalidArgument("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
	s.Assert().Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 65},
		{errors.CodeOutOfRange, 64},
		{errors.CodeNotFound, 66},
		{errors.CodeFailedPrecondition, 78},
		{errors.CodeInternal, 70},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.ExitCode())
		})
	}
}
