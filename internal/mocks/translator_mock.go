// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Detect(ctx context.Context, text string) (string, float64, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Get(1).(float64), args.Error(2)
}

func (m *MockTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	args := m.Called(ctx, text, sourceLang, targetLang)
	return args.String(0), args.Error(1)
}

func (m *MockTranslator) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
