// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
//

// Package dispatch_test is a generated GoMock package.
package dispatch_test

import (
	context "context"
	entities "dispatch/internal/entities"
	partner "dispatch/internal/gateway/partner"
	pricing "dispatch/internal/service/pricing"
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

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, orderEntity)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, orderEntity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, orderEntity)
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

// GetByPartnerClaim mocks base method.
func (m *MockRepository) GetByPartnerClaim(ctx context.Context, claimID string) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByPartnerClaim", ctx, claimID)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByPartnerClaim indicates an expected call of GetByPartnerClaim.
func (mr *MockRepositoryMockRecorder) GetByPartnerClaim(ctx, claimID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByPartnerClaim", reflect.TypeOf((*MockRepository)(nil).GetByPartnerClaim), ctx, claimID)
}

// ListUnassigned mocks base method.
func (m *MockRepository) ListUnassigned(ctx context.Context, limit int) ([]entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUnassigned", ctx, limit)
	ret0, _ := ret[0].([]entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListUnassigned indicates an expected call of ListUnassigned.
func (mr *MockRepositoryMockRecorder) ListUnassigned(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUnassigned", reflect.TypeOf((*MockRepository)(nil).ListUnassigned), ctx, limit)
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

// MockCourierQueue is a mock of CourierQueue interface.
type MockCourierQueue struct {
	ctrl     *gomock.Controller
	recorder *MockCourierQueueMockRecorder
	isgomock struct{}
}

// MockCourierQueueMockRecorder is the mock recorder for MockCourierQueue.
type MockCourierQueueMockRecorder struct {
	mock *MockCourierQueue
}

// NewMockCourierQueue creates a new mock instance.
func NewMockCourierQueue(ctrl *gomock.Controller) *MockCourierQueue {
	mock := &MockCourierQueue{ctrl: ctrl}
	mock.recorder = &MockCourierQueueMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCourierQueue) EXPECT() *MockCourierQueueMockRecorder {
	return m.recorder
}

// Pop mocks base method.
func (m *MockCourierQueue) Pop(ctx context.Context, terminalID int64, vehicle entities.VehicleType) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Pop", ctx, terminalID, vehicle)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Pop indicates an expected call of Pop.
func (mr *MockCourierQueueMockRecorder) Pop(ctx, terminalID, vehicle any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Pop", reflect.TypeOf((*MockCourierQueue)(nil).Pop), ctx, terminalID, vehicle)
}

// SetLast mocks base method.
func (m *MockCourierQueue) SetLast(ctx context.Context, courierID, terminalID int64, vehicle entities.VehicleType) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetLast", ctx, courierID, terminalID, vehicle)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetLast indicates an expected call of SetLast.
func (mr *MockCourierQueueMockRecorder) SetLast(ctx, courierID, terminalID, vehicle any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetLast", reflect.TypeOf((*MockCourierQueue)(nil).SetLast), ctx, courierID, terminalID, vehicle)
}

// MockOrderState is a mock of OrderState interface.
type MockOrderState struct {
	ctrl     *gomock.Controller
	recorder *MockOrderStateMockRecorder
	isgomock struct{}
}

// MockOrderStateMockRecorder is the mock recorder for MockOrderState.
type MockOrderStateMockRecorder struct {
	mock *MockOrderState
}

// NewMockOrderState creates a new mock instance.
func NewMockOrderState(ctrl *gomock.Controller) *MockOrderState {
	mock := &MockOrderState{ctrl: ctrl}
	mock.recorder = &MockOrderStateMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOrderState) EXPECT() *MockOrderStateMockRecorder {
	return m.recorder
}

// AssignCourier mocks base method.
func (m *MockOrderState) AssignCourier(ctx context.Context, orderID string, courierID int64, actor string) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignCourier", ctx, orderID, courierID, actor)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AssignCourier indicates an expected call of AssignCourier.
func (mr *MockOrderStateMockRecorder) AssignCourier(ctx, orderID, courierID, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignCourier", reflect.TypeOf((*MockOrderState)(nil).AssignCourier), ctx, orderID, courierID, actor)
}

// ChangeStatus mocks base method.
func (m *MockOrderState) ChangeStatus(ctx context.Context, orderID string, statusID int64, actor string) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChangeStatus", ctx, orderID, statusID, actor)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ChangeStatus indicates an expected call of ChangeStatus.
func (mr *MockOrderStateMockRecorder) ChangeStatus(ctx, orderID, statusID, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChangeStatus", reflect.TypeOf((*MockOrderState)(nil).ChangeStatus), ctx, orderID, statusID, actor)
}

// ClearCourier mocks base method.
func (m *MockOrderState) ClearCourier(ctx context.Context, orderID, actor string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearCourier", ctx, orderID, actor)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearCourier indicates an expected call of ClearCourier.
func (mr *MockOrderStateMockRecorder) ClearCourier(ctx, orderID, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearCourier", reflect.TypeOf((*MockOrderState)(nil).ClearCourier), ctx, orderID, actor)
}

// MockPricingResolver is a mock of PricingResolver interface.
type MockPricingResolver struct {
	ctrl     *gomock.Controller
	recorder *MockPricingResolverMockRecorder
	isgomock struct{}
}

// MockPricingResolverMockRecorder is the mock recorder for MockPricingResolver.
type MockPricingResolverMockRecorder struct {
	mock *MockPricingResolver
}

// NewMockPricingResolver creates a new mock instance.
func NewMockPricingResolver(ctrl *gomock.Controller) *MockPricingResolver {
	mock := &MockPricingResolver{ctrl: ctrl}
	mock.recorder = &MockPricingResolverMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPricingResolver) EXPECT() *MockPricingResolverMockRecorder {
	return m.recorder
}

// Resolve mocks base method.
func (m *MockPricingResolver) Resolve(ctx context.Context, in pricing.ResolveInput) (*pricing.Resolution, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Resolve", ctx, in)
	ret0, _ := ret[0].(*pricing.Resolution)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Resolve indicates an expected call of Resolve.
func (mr *MockPricingResolverMockRecorder) Resolve(ctx, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Resolve", reflect.TypeOf((*MockPricingResolver)(nil).Resolve), ctx, in)
}

// MockPartnerGateway is a mock of PartnerGateway interface.
type MockPartnerGateway struct {
	ctrl     *gomock.Controller
	recorder *MockPartnerGatewayMockRecorder
	isgomock struct{}
}

// MockPartnerGatewayMockRecorder is the mock recorder for MockPartnerGateway.
type MockPartnerGatewayMockRecorder struct {
	mock *MockPartnerGateway
}

// NewMockPartnerGateway creates a new mock instance.
func NewMockPartnerGateway(ctrl *gomock.Controller) *MockPartnerGateway {
	mock := &MockPartnerGateway{ctrl: ctrl}
	mock.recorder = &MockPartnerGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPartnerGateway) EXPECT() *MockPartnerGatewayMockRecorder {
	return m.recorder
}

// AcceptClaim mocks base method.
func (m *MockPartnerGateway) AcceptClaim(ctx context.Context, claimID string, version int) (*partner.Claim, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AcceptClaim", ctx, claimID, version)
	ret0, _ := ret[0].(*partner.Claim)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AcceptClaim indicates an expected call of AcceptClaim.
func (mr *MockPartnerGatewayMockRecorder) AcceptClaim(ctx, claimID, version any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AcceptClaim", reflect.TypeOf((*MockPartnerGateway)(nil).AcceptClaim), ctx, claimID, version)
}

// ClaimInfo mocks base method.
func (m *MockPartnerGateway) ClaimInfo(ctx context.Context, claimID string) (*partner.Claim, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimInfo", ctx, claimID)
	ret0, _ := ret[0].(*partner.Claim)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClaimInfo indicates an expected call of ClaimInfo.
func (mr *MockPartnerGatewayMockRecorder) ClaimInfo(ctx, claimID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimInfo", reflect.TypeOf((*MockPartnerGateway)(nil).ClaimInfo), ctx, claimID)
}

// CreateClaim mocks base method.
func (m *MockPartnerGateway) CreateClaim(ctx context.Context, req partner.ShipmentRequest) (*partner.Claim, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateClaim", ctx, req)
	ret0, _ := ret[0].(*partner.Claim)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateClaim indicates an expected call of CreateClaim.
func (mr *MockPartnerGatewayMockRecorder) CreateClaim(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateClaim", reflect.TypeOf((*MockPartnerGateway)(nil).CreateClaim), ctx, req)
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

// Organization mocks base method.
func (m *MockRefCache) Organization(ctx context.Context, id int64) (*entities.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Organization", ctx, id)
	ret0, _ := ret[0].(*entities.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Organization indicates an expected call of Organization.
func (mr *MockRefCacheMockRecorder) Organization(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Organization", reflect.TypeOf((*MockRefCache)(nil).Organization), ctx, id)
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
