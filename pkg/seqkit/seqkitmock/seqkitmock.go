// Package seqkitmock provides gomock test doubles of the sequence protocol.
//
// The doubles are written in the shape mockgen generates,
// as mockgen cannot generate them for generic interfaces.
package seqkitmock

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/tcbrindle/flux-sub002/pkg/seqkit"
)

var _ seqkit.Sequence[int, int] = (*MockSequence[int, int])(nil)

// MockSequence is a mock of the seqkit.Sequence interface.
type MockSequence[E any, C comparable] struct {
	ctrl     *gomock.Controller
	recorder *MockSequenceMockRecorder[E, C]
}

// MockSequenceMockRecorder is the mock recorder for MockSequence.
type MockSequenceMockRecorder[E any, C comparable] struct {
	mock *MockSequence[E, C]
}

// NewMockSequence creates a new mock instance.
func NewMockSequence[E any, C comparable](ctrl *gomock.Controller) *MockSequence[E, C] {
	mock := &MockSequence[E, C]{ctrl: ctrl}
	mock.recorder = &MockSequenceMockRecorder[E, C]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSequence[E, C]) EXPECT() *MockSequenceMockRecorder[E, C] {
	return m.recorder
}

// First mocks base method.
func (m *MockSequence[E, C]) First() C {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "First")
	ret0, _ := ret[0].(C)
	return ret0
}

// First indicates an expected call of First.
func (mr *MockSequenceMockRecorder[E, C]) First() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "First", reflect.TypeOf((*MockSequence[E, C])(nil).First))
}

// IsLast mocks base method.
func (m *MockSequence[E, C]) IsLast(cur C) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsLast", cur)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsLast indicates an expected call of IsLast.
func (mr *MockSequenceMockRecorder[E, C]) IsLast(cur interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsLast", reflect.TypeOf((*MockSequence[E, C])(nil).IsLast), cur)
}

// ReadAt mocks base method.
func (m *MockSequence[E, C]) ReadAt(cur C) E {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadAt", cur)
	ret0, _ := ret[0].(E)
	return ret0
}

// ReadAt indicates an expected call of ReadAt.
func (mr *MockSequenceMockRecorder[E, C]) ReadAt(cur interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadAt", reflect.TypeOf((*MockSequence[E, C])(nil).ReadAt), cur)
}

// Inc mocks base method.
func (m *MockSequence[E, C]) Inc(cur *C) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Inc", cur)
}

// Inc indicates an expected call of Inc.
func (mr *MockSequenceMockRecorder[E, C]) Inc(cur interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Inc", reflect.TypeOf((*MockSequence[E, C])(nil).Inc), cur)
}
