// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/shipper1953/carton-service/internal/domain/model"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(key uint64) (model.CartonizationResult, bool) {
	args := m.Called(key)
	return args.Get(0).(model.CartonizationResult), args.Bool(1)
}

func (m *MockCache) Set(key uint64, value model.CartonizationResult) {
	m.Called(key, value)
}

func (m *MockCache) Invalidate(key uint64) {
	m.Called(key)
}

func (m *MockCache) Clear() {
	m.Called()
}

func (m *MockCache) Stop() {
	m.Called()
}
