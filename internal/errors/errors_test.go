package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-combat/internal/errors"
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
		err      *errors.Error
		expected string
	}{
		{
			name:     "not found",
			err:      errors.NotFoundf("character %s not found", "char_1"),
			expected: "NOT_FOUND: character char_1 not found",
		},
		{
			name:     "invalid argument",
			err:      errors.InvalidArgument("name is required"),
			expected: "INVALID_ARGUMENT: name is required",
		},
		{
			name:     "already exists",
			err:      errors.AlreadyExistsf("gear %s already exists", "gear_1"),
			expected: "ALREADY_EXISTS: gear gear_1 already exists",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFound("character not found").WithMeta("character_id", "char_1")

	wrapped := errors.Wrap(base, "failed to load attacker")

	s.True(errors.IsNotFound(wrapped))
	s.Equal("failed to load attacker", errors.GetMessage(wrapped))
	s.Equal("char_1", errors.GetMeta(wrapped)["character_id"])
	s.True(stderrors.Is(wrapped, errors.NotFound("")))
	s.Contains(wrapped.Error(), "NOT_FOUND: failed to load attacker: NOT_FOUND: character not found")
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	wrapped := errors.Wrapf(stderrors.New("boom"), "store %s", "gear")

	s.True(errors.IsInternal(wrapped))
	s.Equal("INTERNAL: store gear: boom", wrapped.Error())
	s.Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
	s.Equal(errors.CodeAlreadyExists, errors.GetCode(errors.AlreadyExistsf("x")))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	err := errors.NotFound("character not found").WithMeta("character_id", "char_1")

	grpcErr := errors.ToGRPCError(err)

	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("character not found", st.Message())
	s.Len(st.Details(), 1)
}

func (s *ErrorsTestSuite) TestToGRPCError_PlainError() {
	st, ok := status.FromError(errors.ToGRPCError(stderrors.New("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.InvalidArgument("attacker and target must differ").WithMeta("character_id", "char_1")

	back := errors.FromGRPCError(errors.ToGRPCError(err))

	s.True(errors.IsInvalidArgument(back))
	s.Equal("attacker and target must differ", errors.GetMessage(back))
	s.Equal("char_1", errors.GetMeta(back)["character_id"])
}

func (s *ErrorsTestSuite) TestFromGRPCError_UnmappedCode() {
	back := errors.FromGRPCError(status.Error(codes.DataLoss, "lost"))

	s.True(errors.IsInternal(back))
	s.Equal("lost", errors.GetMessage(back))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	s.NoError(vb.Build())

	errors.ValidateRequired("name", "  ", vb)
	vb.InvalidField("slot", "unknown slot \"head\"")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(
		`validation failed: name is required; slot is invalid: unknown slot "head"`,
		errors.GetMessage(err),
	)

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string]any)
	s.Require().True(ok)
	s.Equal("is required", fields["name"])
}
