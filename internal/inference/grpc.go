package inference

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/example/photoproof/internal/logging"
	proto "github.com/example/photoproof/proto"
)

// DialClassifier connects to the model-serving sidecar and returns a
// ready engine. The model is loaded behind the sidecar once; every
// Classify call afterwards is stateless.
func DialClassifier(ctx context.Context, addr, modelID, device string, logger *zap.Logger) (Engine, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("inference.dial_classifier", addr, err)
		logger.Error("failed to dial classifier", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}

	return &grpcEngine{
		client:  proto.NewClassifierClient(conn),
		modelID: modelID,
		device:  device,
		logger:  logger.Named("inference_engine"),
	}, conn, nil
}

type grpcEngine struct {
	client  proto.ClassifierClient
	modelID string
	device  string
	logger  *zap.Logger
}

func (g *grpcEngine) Classify(ctx context.Context, imageBytes []byte) (*Prediction, error) {
	resp, err := g.client.Classify(ctx, &proto.ClassifyRequest{
		ImageData: imageBytes,
		ModelId:   g.modelID,
		Device:    g.device,
	})
	if err != nil {
		wrapped := logging.NewOperationError("inference.classify", g.modelID, err)
		g.logger.Error("classifier call failed", zap.Error(wrapped))
		return nil, wrapped
	}

	prediction, err := Interpret(resp.GetLogits(), resp.GetLabels())
	if err != nil {
		wrapped := logging.NewOperationError("inference.interpret", g.modelID, err)
		g.logger.Error("classifier returned malformed output", zap.Error(wrapped))
		return nil, wrapped
	}
	return prediction, nil
}
