package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendTemporaryPassword(ctx context.Context, to, name, password string) error {
	args := m.Called(ctx, to, name, password)
	return args.Error(0)
}
