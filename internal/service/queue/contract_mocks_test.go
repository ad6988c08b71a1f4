// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=queue_test
//

// Package queue_test is a generated GoMock package.
package queue_test

import (
	context "context"
	entities "dispatch/internal/entities"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// Pop mocks base method.
func (m *MockRepository) Pop(ctx context.Context, key string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Pop", ctx, key)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Pop indicates an expected call of Pop.
func (mr *MockRepositoryMockRecorder) Pop(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Pop", reflect.TypeOf((*MockRepository)(nil).Pop), ctx, key)
}

// Push mocks base method.
func (m *MockRepository) Push(ctx context.Context, key string, courierID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Push", ctx, key, courierID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Push indicates an expected call of Push.
func (mr *MockRepositoryMockRecorder) Push(ctx, key, courierID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Push", reflect.TypeOf((*MockRepository)(nil).Push), ctx, key, courierID)
}

// SetLast mocks base method.
func (m *MockRepository) SetLast(ctx context.Context, key string, courierID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetLast", ctx, key, courierID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetLast indicates an expected call of SetLast.
func (mr *MockRepositoryMockRecorder) SetLast(ctx, key, courierID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetLast", reflect.TypeOf((*MockRepository)(nil).SetLast), ctx, key, courierID)
}

// MockRefCache is a mock of RefCache interface.
type MockRefCache struct {
	ctrl     *gomock.Controller
	recorder *MockRefCacheMockRecorder
	isgomock struct{}
}

// MockRefCacheMockRecorder is the mock recorder for MockRefCache.
type MockRefCacheMockRecorder struct {
	mock *MockRefCache
}

// NewMockRefCache creates a new mock instance.
func NewMockRefCache(ctrl *gomock.Controller) *MockRefCache {
	mock := &MockRefCache{ctrl: ctrl}
	mock.recorder = &MockRefCacheMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRefCache) EXPECT() *MockRefCacheMockRecorder {
	return m.recorder
}

// Terminal mocks base method.
func (m *MockRefCache) Terminal(ctx context.Context, id int64) (*entities.Terminal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Terminal", ctx, id)
	ret0, _ := ret[0].(*entities.Terminal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Terminal indicates an expected call of Terminal.
func (mr *MockRefCacheMockRecorder) Terminal(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Terminal", reflect.TypeOf((*MockRefCache)(nil).Terminal), ctx, id)
}

// MockClock is a mock of Clock interface.
type MockClock struct {
	ctrl     *gomock.Controller
	recorder *MockClockMockRecorder
	isgomock struct{}
}

// MockClockMockRecorder is the mock recorder for MockClock.
type MockClockMockRecorder struct {
	mock *MockClock
}

// NewMockClock creates a new mock instance.
func NewMockClock(ctrl *gomock.Controller) *MockClock {
	mock := &MockClock{ctrl: ctrl}
	mock.recorder = &MockClockMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockClock) EXPECT() *MockClockMockRecorder {
	return m.recorder
}

// Now mocks base method.
func (m *MockClock) Now() time.Time {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Now")
	ret0, _ := ret[0].(time.Time)
	return ret0
}

// Now indicates an expected call of Now.
func (mr *MockClockMockRecorder) Now() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Now", reflect.TypeOf((*MockClock)(nil).Now))
}
