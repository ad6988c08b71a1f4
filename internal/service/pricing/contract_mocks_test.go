// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_test
//

// Package pricing_test is a generated GoMock package.
package pricing_test

import (
	context "context"
	entities "dispatch/internal/entities"
	routing "dispatch/internal/gateway/routing"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

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

// PricingRules mocks base method.
func (m *MockRefCache) PricingRules(ctx context.Context, organizationID int64) ([]entities.PricingRule, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PricingRules", ctx, organizationID)
	ret0, _ := ret[0].([]entities.PricingRule)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PricingRules indicates an expected call of PricingRules.
func (mr *MockRefCacheMockRecorder) PricingRules(ctx, organizationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PricingRules", reflect.TypeOf((*MockRefCache)(nil).PricingRules), ctx, organizationID)
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

// MockRoutingGateway is a mock of RoutingGateway interface.
type MockRoutingGateway struct {
	ctrl     *gomock.Controller
	recorder *MockRoutingGatewayMockRecorder
	isgomock struct{}
}

// MockRoutingGatewayMockRecorder is the mock recorder for MockRoutingGateway.
type MockRoutingGatewayMockRecorder struct {
	mock *MockRoutingGateway
}

// NewMockRoutingGateway creates a new mock instance.
func NewMockRoutingGateway(ctrl *gomock.Controller) *MockRoutingGateway {
	mock := &MockRoutingGateway{ctrl: ctrl}
	mock.recorder = &MockRoutingGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRoutingGateway) EXPECT() *MockRoutingGatewayMockRecorder {
	return m.recorder
}

// GetRoute mocks base method.
func (m *MockRoutingGateway) GetRoute(ctx context.Context, from, to entities.Location) (*routing.Route, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRoute", ctx, from, to)
	ret0, _ := ret[0].(*routing.Route)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRoute indicates an expected call of GetRoute.
func (mr *MockRoutingGatewayMockRecorder) GetRoute(ctx, from, to any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRoute", reflect.TypeOf((*MockRoutingGateway)(nil).GetRoute), ctx, from, to)
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
