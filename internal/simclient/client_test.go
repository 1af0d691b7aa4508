package simclient

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/dkoval/vla-robustness/go-harness/gen/simpb"
)

// #region mock
type mockSimService struct {
	pb.SimulatorServiceClient

	instructionResp *pb.TaskInstructionResponse
	instructionErr  error

	resetResp *pb.ResetResponse
	resetErr  error

	stepResp *pb.StepResponse
	stepErr  error

	inferResp *pb.InferResponse
	inferErr  error
}

func (m *mockSimService) TaskInstruction(_ context.Context, _ *pb.TaskInstructionRequest, _ ...grpc.CallOption) (*pb.TaskInstructionResponse, error) {
	return m.instructionResp, m.instructionErr
}

func (m *mockSimService) Reset(_ context.Context, _ *pb.ResetRequest, _ ...grpc.CallOption) (*pb.ResetResponse, error) {
	return m.resetResp, m.resetErr
}

func (m *mockSimService) Step(_ context.Context, _ *pb.StepRequest, _ ...grpc.CallOption) (*pb.StepResponse, error) {
	return m.stepResp, m.stepErr
}

func (m *mockSimService) Infer(_ context.Context, _ *pb.InferRequest, _ ...grpc.CallOption) (*pb.InferResponse, error) {
	return m.inferResp, m.inferErr
}

// #endregion mock

// #region constructor-tests
func TestNewSimClientAddr(t *testing.T) {
	client, err := NewSimClient("localhost:0")
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	defer client.Close()
}

func TestNewSimClientWithService(t *testing.T) {
	c := NewSimClientWithService(&mockSimService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
}

// #endregion constructor-tests

// #region instruction-tests
func TestInstruction_Success(t *testing.T) {
	mock := &mockSimService{
		instructionResp: &pb.TaskInstructionResponse{
			Instruction: "pick coke can",
		},
	}
	c := &SimClient{client: mock}

	instr, err := c.Instruction(context.Background(), "google_robot_pick_coke_can")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if instr != "pick coke can" {
		t.Errorf("expected 'pick coke can', got %q", instr)
	}
}

func TestInstruction_Empty(t *testing.T) {
	mock := &mockSimService{
		instructionResp: &pb.TaskInstructionResponse{},
	}
	c := &SimClient{client: mock}

	_, err := c.Instruction(context.Background(), "google_robot_pick_coke_can")
	if err == nil {
		t.Fatal("expected error for empty instruction")
	}
}

func TestInstruction_Error(t *testing.T) {
	mock := &mockSimService{
		instructionErr: errors.New("rpc failed"),
	}
	c := &SimClient{client: mock}

	_, err := c.Instruction(context.Background(), "google_robot_pick_coke_can")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.instructionErr) {
		t.Errorf("expected wrapped rpc error, got: %v", err)
	}
}

// #endregion instruction-tests

// #region reset-tests
func TestReset_Success(t *testing.T) {
	mock := &mockSimService{
		resetResp: &pb.ResetResponse{
			Observation: []byte{0x01, 0x02, 0x03},
		},
	}
	c := &SimClient{client: mock}

	obs, err := c.Reset(context.Background(), "google_robot_pick_coke_can", 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obs) != 3 {
		t.Errorf("expected 3 observation bytes, got %d", len(obs))
	}
}

func TestReset_Error(t *testing.T) {
	mock := &mockSimService{
		resetErr: errors.New("reset failed"),
	}
	c := &SimClient{client: mock}

	_, err := c.Reset(context.Background(), "google_robot_pick_coke_can", 42)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.resetErr) {
		t.Errorf("expected wrapped reset error, got: %v", err)
	}
}

// #endregion reset-tests

// #region step-tests
func TestStep_Success(t *testing.T) {
	mock := &mockSimService{
		stepResp: &pb.StepResponse{
			Observation: []byte{0xAA},
			Reward:      1.0,
			Terminated:  true,
			InfoJson:    `{"distance_to_target": 0.03, "phase": "grasp"}`,
		},
	}
	c := &SimClient{client: mock}

	res, err := c.Step(context.Background(), []float32{0.1, 0.2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reward != 1.0 {
		t.Errorf("expected reward 1.0, got %f", res.Reward)
	}
	if !res.Terminated {
		t.Error("expected terminated")
	}
	if res.Info["distance_to_target"] != 0.03 {
		t.Errorf("expected distance_to_target 0.03, got %f", res.Info["distance_to_target"])
	}
	if _, ok := res.Info["phase"]; ok {
		t.Error("expected non-numeric info key to be dropped")
	}
}

func TestStep_EmptyInfo(t *testing.T) {
	mock := &mockSimService{
		stepResp: &pb.StepResponse{},
	}
	c := &SimClient{client: mock}

	res, err := c.Step(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Info != nil {
		t.Errorf("expected nil info for empty info_json, got %v", res.Info)
	}
}

func TestStep_MalformedInfo(t *testing.T) {
	mock := &mockSimService{
		stepResp: &pb.StepResponse{
			InfoJson: "{not json",
		},
	}
	c := &SimClient{client: mock}

	_, err := c.Step(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error for malformed info json")
	}
}

func TestStep_Error(t *testing.T) {
	mock := &mockSimService{
		stepErr: errors.New("step failed"),
	}
	c := &SimClient{client: mock}

	_, err := c.Step(context.Background(), []float32{0.1})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.stepErr) {
		t.Errorf("expected wrapped step error, got: %v", err)
	}
}

// #endregion step-tests

// #region infer-tests
func TestInfer_Success(t *testing.T) {
	mock := &mockSimService{
		inferResp: &pb.InferResponse{
			Action: []float32{0.1, -0.2, 0.3},
		},
	}
	c := &SimClient{client: mock}

	action, err := c.Infer(context.Background(), []byte{0x01}, "pick coke can")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(action) != 3 {
		t.Fatalf("expected 3 action dims, got %d", len(action))
	}
	if action[1] != -0.2 {
		t.Errorf("expected action[1] -0.2, got %f", action[1])
	}
}

func TestInfer_Error(t *testing.T) {
	mock := &mockSimService{
		inferErr: errors.New("inference failed"),
	}
	c := &SimClient{client: mock}

	_, err := c.Infer(context.Background(), []byte{0x01}, "pick coke can")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.inferErr) {
		t.Errorf("expected wrapped infer error, got: %v", err)
	}
}

// #endregion infer-tests
