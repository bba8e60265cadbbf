package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
	"github.com/KirkDiggler/rpg-trainer/internal/handlers/trainer/v1alpha1"
	"github.com/KirkDiggler/rpg-trainer/internal/orchestrators/training"
	trainingmock "github.com/KirkDiggler/rpg-trainer/internal/orchestrators/training/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTraining *trainingmock.MockService
	handler      *v1alpha1.Handler

	start osrs.Levels
	goal  osrs.Levels
	plan  *training.Plan
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTraining = trainingmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		TrainingService: s.mockTraining,
	})
	s.Require().NoError(err)
	s.handler = handler

	s.start = osrs.Levels{Attack: 1, Strength: 1, Defence: 1}
	s.goal = osrs.Levels{Attack: 2, Strength: 1, Defence: 1}

	sword := osrs.ItemGroup{
		ItemIDs:    []int{1277, 1279},
		Slot:       osrs.SlotWeapon,
		Offense:    4,
		Strength:   5,
		DamageType: osrs.DamageTypeSlash,
		Style:      osrs.StyleAccurate,
		Cadence:    4,
	}
	s.plan = &training.Plan{
		ID:         "plan_1",
		Start:      s.start,
		Goal:       s.goal,
		Reachable:  true,
		TotalHours: 0.25,
		Expanded:   2,
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Steps: []training.Step{
			{
				From:  s.start,
				To:    s.goal,
				Style: osrs.StyleAccurate,
				Skill: osrs.SkillAttack,
				Hours: 0.25,
				Gear: []training.GearPiece{
					{Slot: osrs.SlotWeapon, Group: sword, Name: "Bronze sword-like group"},
					{Slot: osrs.SlotHead, Group: osrs.EmptyGroup(osrs.SlotHead, osrs.DamageTypeSlash), Name: "Nothing"},
				},
			},
		},
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestPlanTrainingSuccess() {
	ctx := context.Background()

	s.mockTraining.EXPECT().
		PlanTraining(ctx, &training.PlanTrainingInput{Start: s.start, Goal: s.goal}).
		Return(&training.PlanTrainingOutput{Plan: s.plan}, nil)

	resp, err := s.handler.PlanTraining(ctx, v1alpha1.EncodePlanTrainingRequest(s.start, s.goal))
	s.Require().NoError(err)

	decoded, err := v1alpha1.DecodePlan(resp)
	s.Require().NoError(err)
	s.Equal(s.plan, decoded)
}

func (s *HandlerTestSuite) TestPlanTrainingInvalidRequest() {
	testCases := []struct {
		name  string
		req   *structpb.Struct
		field string
	}{
		{
			name:  "nil request",
			req:   nil,
			field: "",
		},
		{
			name:  "missing goal",
			req:   &structpb.Struct{Fields: map[string]*structpb.Value{"start": structpb.NewStructValue(&structpb.Struct{})}},
			field: "goal",
		},
		{
			name: "start not an object",
			req: &structpb.Struct{Fields: map[string]*structpb.Value{
				"start": structpb.NewStringValue("40"),
				"goal":  v1alpha1.EncodePlanTrainingRequest(s.start, s.goal).Fields["goal"],
			}},
			field: "start",
		},
		{
			name: "fractional level",
			req: func() *structpb.Struct {
				req := v1alpha1.EncodePlanTrainingRequest(s.start, s.goal)
				req.Fields["goal"].GetStructValue().Fields["attack"] = structpb.NewNumberValue(2.5)
				return req
			}(),
			field: "goal.attack",
		},
		{
			name: "missing strength",
			req: func() *structpb.Struct {
				req := v1alpha1.EncodePlanTrainingRequest(s.start, s.goal)
				delete(req.Fields["start"].GetStructValue().Fields, "strength")
				return req
			}(),
			field: "start.strength",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.handler.PlanTraining(context.Background(), tc.req)
			s.Nil(resp)
			s.Require().Error(err)

			st, ok := status.FromError(err)
			s.Require().True(ok)
			s.Equal(codes.InvalidArgument, st.Code())
			if tc.field != "" {
				s.Contains(st.Message(), tc.field)
			}
		})
	}
}

func (s *HandlerTestSuite) TestPlanTrainingServiceErrors() {
	testCases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{
			name: "invalid levels",
			err:  errors.InvalidArgument("Start.Attack: must be between 1 and 99"),
			code: codes.InvalidArgument,
		},
		{
			name: "no weapon",
			err:  errors.FailedPrecondition("no weapon at breakpoint"),
			code: codes.FailedPrecondition,
		},
		{
			name: "budget",
			err:  errors.ResourceExhaustedf("search expanded %d states", 10),
			code: codes.ResourceExhausted,
		},
		{
			name: "unclassified",
			err:  context.DeadlineExceeded,
			code: codes.Internal,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockTraining.EXPECT().
				PlanTraining(gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			_, err := s.handler.PlanTraining(context.Background(), v1alpha1.EncodePlanTrainingRequest(s.start, s.goal))
			s.Require().Error(err)
			s.Equal(tc.code, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestRoundTripOverGRPC() {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	v1alpha1.RegisterTrainingServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	s.T().Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	client := v1alpha1.NewTrainingServiceClient(conn)

	s.Run("plan", func() {
		s.mockTraining.EXPECT().
			PlanTraining(gomock.Any(), &training.PlanTrainingInput{Start: s.start, Goal: s.goal}).
			Return(&training.PlanTrainingOutput{Plan: s.plan}, nil)

		resp, err := client.PlanTraining(context.Background(), v1alpha1.EncodePlanTrainingRequest(s.start, s.goal))
		s.Require().NoError(err)

		decoded, err := v1alpha1.DecodePlan(resp)
		s.Require().NoError(err)
		s.Equal(s.plan, decoded)
	})

	s.Run("error metadata survives the wire", func() {
		s.mockTraining.EXPECT().
			PlanTraining(gomock.Any(), gomock.Any()).
			Return(nil, errors.FailedPrecondition("no weapon").
				WithMeta("breakpoint", "1/1/1").
				WithMeta("style", "accurate"))

		_, err := client.PlanTraining(context.Background(), v1alpha1.EncodePlanTrainingRequest(s.start, s.goal))
		s.Require().Error(err)

		converted := errors.FromGRPCError(err)
		s.True(errors.IsFailedPrecondition(converted))
		s.Equal("no weapon", errors.GetMessage(converted))
		s.Equal(map[string]interface{}{"breakpoint": "1/1/1", "style": "accurate"}, errors.GetMeta(converted))
	})
}

func (s *HandlerTestSuite) TestDecodePlanWithoutBody() {
	_, err := v1alpha1.DecodePlan(&structpb.Struct{})
	s.Require().Error(err)
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
}
