package commands_test

import (
	"context"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockVesselRepository struct {
	mock.Mock
}

func (m *MockVesselRepository) Add(ctx context.Context, vessel ports.Vessel) error {
	args := m.Called(ctx, vessel)
	return args.Error(0)
}

func (m *MockVesselRepository) Get(ctx context.Context, id kernel.UUID) (ports.Vessel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.Vessel), args.Error(1)
}

func (m *MockVesselRepository) GetAll(ctx context.Context) ([]ports.Vessel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ports.Vessel), args.Error(1)
}

type recordingNotifier struct {
	notices []cargo.Notice
}

func (n *recordingNotifier) Notify(notice cargo.Notice) {
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) messages() []string {
	out := make([]string, 0, len(n.notices))
	for _, notice := range n.notices {
		out = append(out, notice.Message)
	}
	return out
}
