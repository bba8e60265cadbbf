// Package v1alpha1 handles the TrainingService gRPC interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-trainer/internal/errors"
	"github.com/KirkDiggler/rpg-trainer/internal/orchestrators/training"
)

// HandlerConfig holds dependencies for the training handler
type HandlerConfig struct {
	TrainingService training.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.TrainingService == nil {
		return errors.InvalidArgument("training service is required")
	}
	return nil
}

// Handler implements TrainingServiceServer
type Handler struct {
	trainingService training.Service
}

var _ TrainingServiceServer = (*Handler)(nil)

// NewHandler creates a new training handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		trainingService: cfg.TrainingService,
	}, nil
}

// PlanTraining plans the fastest route between the request's start and goal levels
func (h *Handler) PlanTraining(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := DecodePlanTrainingRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.trainingService.PlanTraining(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := EncodePlan(output.Plan)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}
