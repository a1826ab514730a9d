package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of router.Client
type Client struct {
	mock.Mock
}

func (m *Client) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Client) GetStaticList(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *Client) ApplyStaticList(ctx context.Context, raw string) error {
	args := m.Called(ctx, raw)
	return args.Error(0)
}
