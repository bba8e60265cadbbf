package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ServiceName is the fully qualified gRPC service name
	ServiceName = "trainer.api.v1alpha1.TrainingService"

	// PlanTrainingFullMethodName is the full method name of PlanTraining
	PlanTrainingFullMethodName = "/" + ServiceName + "/PlanTraining"
)

// TrainingServiceServer is the server API for TrainingService.
// Messages are google.protobuf.Struct documents, see codec.go for the shape.
type TrainingServiceServer interface {
	PlanTraining(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// TrainingServiceClient is the client API for TrainingService
type TrainingServiceClient interface {
	PlanTraining(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type trainingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTrainingServiceClient creates a TrainingService client on cc
func NewTrainingServiceClient(cc grpc.ClientConnInterface) TrainingServiceClient {
	return &trainingServiceClient{cc: cc}
}

func (c *trainingServiceClient) PlanTraining(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PlanTrainingFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterTrainingServiceServer registers srv on s
func RegisterTrainingServiceServer(s grpc.ServiceRegistrar, srv TrainingServiceServer) {
	s.RegisterService(&TrainingServiceDesc, srv)
}

func planTrainingHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrainingServiceServer).PlanTraining(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanTrainingFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrainingServiceServer).PlanTraining(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// TrainingServiceDesc is the grpc.ServiceDesc for TrainingService.
// Messages are structpb.Struct, there is no .proto file to name in Metadata.
var TrainingServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TrainingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PlanTraining",
			Handler:    planTrainingHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
