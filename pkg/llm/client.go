package llm

import (
	"context"
	"errors"
	"fmt"

	llmv1 "github.com/Boatschool/drfirst-business-case-generator-sub005/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// GRPCClient implements Backend by calling an LLM inference service over
// gRPC with a single unary call — an Agent Runner needs the complete
// artifact text before it can parse and validate it, never a partial
// stream to render live.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient dials addr with insecure (plaintext) transport — the
// inference backend is expected to run as a sidecar or on a trusted
// network.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("llm: connect to %s: %w", addr, err)
	}
	return &GRPCClient{conn: conn, client: llmv1.NewLLMServiceClient(conn)}, nil
}

// Close releases the underlying gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Generate calls the remote LLMService and classifies transport failures
// into the Backend-level sentinel errors Agent Runners translate into the
// AgentError taxonomy.
func (c *GRPCClient) Generate(ctx context.Context, renderedPrompt string, params Params) (string, error) {
	if params.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, params.Timeout)
		defer cancel()
	}

	resp, err := c.client.Generate(ctx, &llmv1.GenerateRequest{
		RenderedPrompt: renderedPrompt,
		Params: &llmv1.GenerationParams{
			Model:          params.Model,
			Temperature:    params.Temperature,
			MaxTokens:      params.MaxTokens,
			TimeoutSeconds: int32(params.Timeout.Seconds()),
		},
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		st, ok := status.FromError(err)
		if ok && (st.Code() == codes.Unavailable || st.Code() == codes.DeadlineExceeded) {
			if st.Code() == codes.DeadlineExceeded {
				return "", ErrTimeout
			}
			return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return "", fmt.Errorf("llm: generate: %w", err)
	}
	return resp.Text, nil
}
