// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderstate_test
//

// Package orderstate_test is a generated GoMock package.
package orderstate_test

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

// ClearCourier mocks base method.
func (m *MockRepository) ClearCourier(ctx context.Context, orderID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearCourier", ctx, orderID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearCourier indicates an expected call of ClearCourier.
func (mr *MockRepositoryMockRecorder) ClearCourier(ctx, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearCourier", reflect.TypeOf((*MockRepository)(nil).ClearCourier), ctx, orderID)
}

// FinishedByCourier mocks base method.
func (m *MockRepository) FinishedByCourier(ctx context.Context, courierID int64, from, to time.Time) ([]entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FinishedByCourier", ctx, courierID, from, to)
	ret0, _ := ret[0].([]entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FinishedByCourier indicates an expected call of FinishedByCourier.
func (mr *MockRepositoryMockRecorder) FinishedByCourier(ctx, courierID, from, to any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FinishedByCourier", reflect.TypeOf((*MockRepository)(nil).FinishedByCourier), ctx, courierID, from, to)
}

// GetByID mocks base method.
func (m *MockRepository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, orderID)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepositoryMockRecorder) GetByID(ctx, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepository)(nil).GetByID), ctx, orderID)
}

// HasLocation mocks base method.
func (m *MockRepository) HasLocation(ctx context.Context, orderID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasLocation", ctx, orderID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasLocation indicates an expected call of HasLocation.
func (mr *MockRepositoryMockRecorder) HasLocation(ctx, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasLocation", reflect.TypeOf((*MockRepository)(nil).HasLocation), ctx, orderID)
}

// InsertAction mocks base method.
func (m *MockRepository) InsertAction(ctx context.Context, action entities.OrderAction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertAction", ctx, action)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertAction indicates an expected call of InsertAction.
func (mr *MockRepositoryMockRecorder) InsertAction(ctx, action any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertAction", reflect.TypeOf((*MockRepository)(nil).InsertAction), ctx, action)
}

// InsertLocation mocks base method.
func (m *MockRepository) InsertLocation(ctx context.Context, location entities.OrderLocation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertLocation", ctx, location)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertLocation indicates an expected call of InsertLocation.
func (mr *MockRepositoryMockRecorder) InsertLocation(ctx, location any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertLocation", reflect.TypeOf((*MockRepository)(nil).InsertLocation), ctx, location)
}

// LastStatusChangeAt mocks base method.
func (m *MockRepository) LastStatusChangeAt(ctx context.Context, orderID string) (time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LastStatusChangeAt", ctx, orderID)
	ret0, _ := ret[0].(time.Time)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LastStatusChangeAt indicates an expected call of LastStatusChangeAt.
func (mr *MockRepositoryMockRecorder) LastStatusChangeAt(ctx, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LastStatusChangeAt", reflect.TypeOf((*MockRepository)(nil).LastStatusChangeAt), ctx, orderID)
}

// OpenByCourier mocks base method.
func (m *MockRepository) OpenByCourier(ctx context.Context, courierID int64) ([]entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OpenByCourier", ctx, courierID)
	ret0, _ := ret[0].([]entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OpenByCourier indicates an expected call of OpenByCourier.
func (mr *MockRepositoryMockRecorder) OpenByCourier(ctx, courierID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OpenByCourier", reflect.TypeOf((*MockRepository)(nil).OpenByCourier), ctx, courierID)
}

// Update mocks base method.
func (m *MockRepository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, orderModify)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockRepositoryMockRecorder) Update(ctx, orderModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRepository)(nil).Update), ctx, orderModify)
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

// StatusesByOrganization mocks base method.
func (m *MockRefCache) StatusesByOrganization(ctx context.Context, organizationID int64) ([]entities.OrderStatus, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StatusesByOrganization", ctx, organizationID)
	ret0, _ := ret[0].([]entities.OrderStatus)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StatusesByOrganization indicates an expected call of StatusesByOrganization.
func (mr *MockRefCacheMockRecorder) StatusesByOrganization(ctx, organizationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StatusesByOrganization", reflect.TypeOf((*MockRefCache)(nil).StatusesByOrganization), ctx, organizationID)
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

// MockJobProducer is a mock of JobProducer interface.
type MockJobProducer struct {
	ctrl     *gomock.Controller
	recorder *MockJobProducerMockRecorder
	isgomock struct{}
}

// MockJobProducerMockRecorder is the mock recorder for MockJobProducer.
type MockJobProducerMockRecorder struct {
	mock *MockJobProducer
}

// NewMockJobProducer creates a new mock instance.
func NewMockJobProducer(ctrl *gomock.Controller) *MockJobProducer {
	mock := &MockJobProducer{ctrl: ctrl}
	mock.recorder = &MockJobProducerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockJobProducer) EXPECT() *MockJobProducerMockRecorder {
	return m.recorder
}

// Enqueue mocks base method.
func (m *MockJobProducer) Enqueue(topic, key string, payload any) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Enqueue", topic, key, payload)
	ret0, _ := ret[0].(error)
	return ret0
}

// Enqueue indicates an expected call of Enqueue.
func (mr *MockJobProducerMockRecorder) Enqueue(topic, key, payload any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Enqueue", reflect.TypeOf((*MockJobProducer)(nil).Enqueue), topic, key, payload)
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
