// Package mocks provides test doubles for the oceanapi client.
package mocks

import (
	"context"
	"encoding/json"

	model "github.com/oceandata/fisherman-cli/internal/model"
	oceanapi "github.com/oceandata/fisherman-cli/pkg/oceanapi"
	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// Authenticate provides a mock function with given fields: ctx, email, password
func (_m *MockClient) Authenticate(ctx context.Context, email string, password string) (oceanapi.Session, error) {
	ret := _m.Called(ctx, email, password)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	var r0 oceanapi.Session
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (oceanapi.Session, error)); ok {
		return rf(ctx, email, password)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) oceanapi.Session); ok {
		r0 = rf(ctx, email, password)
	} else {
		r0 = ret.Get(0).(oceanapi.Session)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, email, password)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SubmitCatchReport provides a mock function with given fields: ctx, sess, report
func (_m *MockClient) SubmitCatchReport(ctx context.Context, sess oceanapi.Session, report model.CatchReport) error {
	ret := _m.Called(ctx, sess, report)

	if len(ret) == 0 {
		panic("no return value specified for SubmitCatchReport")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, oceanapi.Session, model.CatchReport) error); ok {
		r0 = rf(ctx, sess, report)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// RequestPrediction provides a mock function with given fields: ctx, sess, features
func (_m *MockClient) RequestPrediction(ctx context.Context, sess oceanapi.Session, features model.EnvironmentalFeatures) (*model.PredictionResult, error) {
	ret := _m.Called(ctx, sess, features)

	if len(ret) == 0 {
		panic("no return value specified for RequestPrediction")
	}

	var r0 *model.PredictionResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, oceanapi.Session, model.EnvironmentalFeatures) (*model.PredictionResult, error)); ok {
		return rf(ctx, sess, features)
	}
	if rf, ok := ret.Get(0).(func(context.Context, oceanapi.Session, model.EnvironmentalFeatures) *model.PredictionResult); ok {
		r0 = rf(ctx, sess, features)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.PredictionResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, oceanapi.Session, model.EnvironmentalFeatures) error); ok {
		r1 = rf(ctx, sess, features)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SubmitEDNASample provides a mock function with given fields: ctx, sess, sample
func (_m *MockClient) SubmitEDNASample(ctx context.Context, sess oceanapi.Session, sample model.EDNASample) error {
	ret := _m.Called(ctx, sess, sample)

	if len(ret) == 0 {
		panic("no return value specified for SubmitEDNASample")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, oceanapi.Session, model.EDNASample) error); ok {
		r0 = rf(ctx, sess, sample)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ListSpecies provides a mock function with given fields: ctx, sess
func (_m *MockClient) ListSpecies(ctx context.Context, sess oceanapi.Session) ([]json.RawMessage, error) {
	return _m.list("ListSpecies", ctx, sess)
}

// ListVessels provides a mock function with given fields: ctx, sess
func (_m *MockClient) ListVessels(ctx context.Context, sess oceanapi.Session) ([]json.RawMessage, error) {
	return _m.list("ListVessels", ctx, sess)
}

func (_m *MockClient) list(method string, ctx context.Context, sess oceanapi.Session) ([]json.RawMessage, error) {
	ret := _m.MethodCalled(method, ctx, sess)

	if len(ret) == 0 {
		panic("no return value specified for " + method)
	}

	var r0 []json.RawMessage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]json.RawMessage)
	}

	return r0, ret.Error(1)
}

// NewMockClient creates a new instance of MockClient.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ oceanapi.Client = (*MockClient)(nil)
