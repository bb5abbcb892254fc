package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/entity-arena/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	err := errors.New(errors.CodeNotFound, "owned entity not found")
	s.Assert().Equal("NOT_FOUND: owned entity not found", err.Error())
	s.Assert().Equal(errors.CodeNotFound, err.Code)

	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "failed to load roster")
	s.Assert().Equal("INTERNAL: failed to load roster: dial tcp: refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	base := errors.NotFound("battle not found").WithMeta("battle_id", "battle_1")
	wrapped := errors.Wrap(base, "failed to attack")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("failed to attack", wrapped.Message)
	s.Assert().Equal("battle_1", wrapped.Meta["battle_id"])
	s.Assert().Equal(base, wrapped.Unwrap())

	// Mutating the wrapper must not leak into the cause
	wrapped.WithMeta("player_id", "p1")
	s.Assert().NotContains(base.Meta, "player_id")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := fmt.Errorf("connection reset")
	wrapped := errors.WrapWithCode(base, errors.CodeUnavailable, "redis unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal(base, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
	s.Assert().Nil(errors.SyncFailed(nil, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.Assert().True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.Assert().False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFound := errors.NotFound("test")
	wrapped := errors.Wrap(notFound, "wrapped")

	s.Assert().True(errors.IsNotFound(wrapped))
	s.Assert().False(errors.IsInvalidArgument(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal("wrapped", errors.GetMessage(wrapped))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestInsufficient() {
	err := errors.Insufficient("points", 50, 12)

	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().True(errors.IsInsufficient(err))
	s.Assert().Equal("insufficient points (required: 50, available: 12)", err.Message)
	s.Assert().Equal(50, err.Meta[errors.MetaRequired])
	s.Assert().Equal(12, err.Meta[errors.MetaAvailable])

	s.Assert().False(errors.IsInsufficient(errors.FailedPrecondition("map is locked")))
}

func (s *ErrorsTestSuite) TestContentData() {
	err := errors.ContentDataf("entity %d: min hp %d exceeds max hp %d", 7, 30, 20)

	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().True(errors.IsContentData(err))
	s.Assert().True(errors.IsContentData(errors.Wrap(err, "failed to roll stats")))
	s.Assert().False(errors.IsContentData(errors.InvalidArgument("player id is required")))
}

func (s *ErrorsTestSuite) TestSyncFailed() {
	cause := errors.Internal("redis write failed")
	err := errors.SyncFailed(cause, "failed to persist capture")

	s.Assert().True(errors.IsAborted(err))
	s.Assert().True(errors.IsSyncFailed(err))
	s.Assert().Equal(cause, err.Unwrap())
	s.Assert().False(errors.IsSyncFailed(cause))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.Insufficient("xp", 120, 55).WithMeta("owned_entity_id", "oe_1")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.FailedPrecondition, st.Code())
	s.Assert().Equal("insufficient xp (required: 120, available: 55)", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Assert().True(errors.IsInsufficient(back))
	s.Assert().Equal(120, errors.GetMeta(back)[errors.MetaRequired])
	s.Assert().Equal("oe_1", errors.GetMeta(back)["owned_entity_id"])

	plain := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(plain))
	s.Assert().Nil(errors.GetMeta(plain))

	s.Assert().Equal(codes.Internal, status.Code(errors.ToGRPCError(fmt.Errorf("boom"))))
	s.Assert().Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeAborted, codes.Aborted},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
