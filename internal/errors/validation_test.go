package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("Surface", "is required")
	ve.AddFieldError("Builder", "is required")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: Builder: is required; Surface: is required", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("Locale", "is not a language tag").
		RequiredField("Client")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Client: is required")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("SystemID", "  ", vb)
	errors.ValidateRequired("Locale", "en", vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "SystemID: is required")
	s.Assert().NotContains(err.Error(), "Locale")
}
