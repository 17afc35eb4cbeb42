package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("Roller", "is required")
	ve.AddFieldError("Count", "must be at least 1")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: Count: must be at least 1; Roller: is required", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("Names", "must not be empty").
		Fieldf("Keep", "must be between %d and %d", 1, 4).
		RequiredField("Die")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "str", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("name", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMinAndRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("HistoryCapacity", 0, 1, vb)
	errors.ValidateMin("Count", 4, 1, vb)
	errors.ValidateRange("Keep", 5, 1, 4, vb)
	errors.ValidateRange("Floor", 1, 0, 5, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["HistoryCapacity"][0], "must be at least 1")
	s.Assert().Contains(validationErrors["Keep"][0], "must be between 1 and 4")
	s.Assert().NotContains(validationErrors, "Count")
	s.Assert().NotContains(validationErrors, "Floor")
}
