package simclient

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/dkoval/vla-robustness/go-harness/gen/simpb"
	"github.com/dkoval/vla-robustness/go-harness/internal/episode"
)

// #region client-struct
// SimClient wraps the gRPC connection to the Python simulator sidecar, which
// hosts both the SIMPLER environment and the VLA policy. It satisfies the
// episode Environment and Policy interfaces and serves baseline instructions.
type SimClient struct {
	conn   *grpc.ClientConn
	client pb.SimulatorServiceClient
}

// #endregion client-struct

// #region constructor
// NewSimClient connects to the simulator sidecar gRPC server.
func NewSimClient(addr string) (*SimClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &SimClient{
		conn:   conn,
		client: pb.NewSimulatorServiceClient(conn),
	}, nil
}

// NewSimClientWithService creates a SimClient with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewSimClientWithService(svc pb.SimulatorServiceClient) *SimClient {
	return &SimClient{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *SimClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region instruction
// Instruction fetches the task's canonical language instruction.
func (c *SimClient) Instruction(ctx context.Context, taskID string) (string, error) {
	resp, err := c.client.TaskInstruction(ctx, &pb.TaskInstructionRequest{
		TaskId: taskID,
	})
	if err != nil {
		return "", fmt.Errorf("task instruction rpc: %w", err)
	}
	if resp.Instruction == "" {
		return "", fmt.Errorf("task instruction rpc: empty instruction for task %q", taskID)
	}
	return resp.Instruction, nil
}

// #endregion instruction

// #region reset
// Reset initializes the environment for a task with a fixed seed and returns
// the initial observation.
func (c *SimClient) Reset(ctx context.Context, taskID string, seed int64) (episode.Observation, error) {
	resp, err := c.client.Reset(ctx, &pb.ResetRequest{
		TaskId: taskID,
		Seed:   seed,
	})
	if err != nil {
		return nil, fmt.Errorf("reset rpc: %w", err)
	}
	return episode.Observation(resp.Observation), nil
}

// #endregion reset

// #region step
// Step applies one policy action to the environment.
func (c *SimClient) Step(ctx context.Context, action []float32) (episode.StepResult, error) {
	resp, err := c.client.Step(ctx, &pb.StepRequest{
		Action: action,
	})
	if err != nil {
		return episode.StepResult{}, fmt.Errorf("step rpc: %w", err)
	}

	info, err := decodeInfo(resp.InfoJson)
	if err != nil {
		return episode.StepResult{}, fmt.Errorf("step rpc: %w", err)
	}

	return episode.StepResult{
		Observation: episode.Observation(resp.Observation),
		Reward:      resp.Reward,
		Terminated:  resp.Terminated,
		Info:        info,
	}, nil
}

// decodeInfo extracts the numeric telemetry keys from the env info dict.
// Non-numeric values are dropped rather than failing the step.
func decodeInfo(infoJSON string) (map[string]float64, error) {
	if infoJSON == "" {
		return nil, nil
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(infoJSON), &raw); err != nil {
		return nil, fmt.Errorf("decode info json: %w", err)
	}
	info := make(map[string]float64, len(raw))
	for k, v := range raw {
		if f, ok := v.(float64); ok {
			info[k] = f
		}
	}
	return info, nil
}

// #endregion step

// #region infer
// Infer asks the sidecar-hosted policy for the next action.
func (c *SimClient) Infer(ctx context.Context, obs episode.Observation, instruction string) ([]float32, error) {
	resp, err := c.client.Infer(ctx, &pb.InferRequest{
		Observation: []byte(obs),
		Instruction: instruction,
	})
	if err != nil {
		return nil, fmt.Errorf("infer rpc: %w", err)
	}
	return resp.Action, nil
}

// #endregion infer
