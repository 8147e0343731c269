// Package stackmock provides a hand-written gomock double for the
// Base()/Limit() stack capability, shaped the way mockgen emits one,
// for tests that want to exercise debugreg/generator wiring without a
// real mmap.
package stackmock

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockStack is a mock of the Base()/Limit() stack interface.
type MockStack struct {
	ctrl     *gomock.Controller
	recorder *MockStackMockRecorder
}

// MockStackMockRecorder is the mock recorder for MockStack.
type MockStackMockRecorder struct {
	mock *MockStack
}

// NewMockStack creates a new mock instance.
func NewMockStack(ctrl *gomock.Controller) *MockStack {
	mock := &MockStack{ctrl: ctrl}
	mock.recorder = &MockStackMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStack) EXPECT() *MockStackMockRecorder {
	return m.recorder
}

// Base mocks base method.
func (m *MockStack) Base() uintptr {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Base")
	ret0, _ := ret[0].(uintptr)
	return ret0
}

// Base indicates an expected call of Base.
func (mr *MockStackMockRecorder) Base() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Base", reflect.TypeOf((*MockStack)(nil).Base))
}

// Limit mocks base method.
func (m *MockStack) Limit() uintptr {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Limit")
	ret0, _ := ret[0].(uintptr)
	return ret0
}

// Limit indicates an expected call of Limit.
func (mr *MockStackMockRecorder) Limit() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Limit", reflect.TypeOf((*MockStack)(nil).Limit))
}
