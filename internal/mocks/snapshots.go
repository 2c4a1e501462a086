package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Snapshots is a mock of model.Snapshots.
type Snapshots struct {
	mock.Mock
}

func (m *Snapshots) Load(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	var data []byte
	if v := args.Get(0); v != nil {
		data = v.([]byte)
	}
	return data, args.Error(1)
}

func (m *Snapshots) Save(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *Snapshots) Clear(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
