// Code generated by impgen. DO NOT EDIT.

package tui_test

import (
	context "context"
	tui "github.com/joe/summarize-client/internal/tui"
	api "github.com/joe/summarize-client/pkg/api"
	_imptest "github.com/toejough/imptest/imptest"
)

// BackendMockAnalyticsArgs holds typed arguments for Analytics.
type BackendMockAnalyticsArgs struct {
	Ctx context.Context
}

// BackendMockAnalyticsCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type BackendMockAnalyticsCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *BackendMockAnalyticsCall) GetArgs() BackendMockAnalyticsArgs {
	raw := c.RawArgs()
	return BackendMockAnalyticsArgs{
		Ctx: raw[0].(context.Context),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *BackendMockAnalyticsCall) InjectReturnValues(result0 api.AnalyticsSnapshot, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// BackendMockAnalyticsMethod wraps DependencyMethod with typed returns.
type BackendMockAnalyticsMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *BackendMockAnalyticsMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *BackendMockAnalyticsMethod) ExpectCalledWithExactly(ctx context.Context) *BackendMockAnalyticsCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(ctx)
	return &BackendMockAnalyticsCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *BackendMockAnalyticsMethod) ExpectCalledWithMatches(matchers ...any) *BackendMockAnalyticsCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &BackendMockAnalyticsCall{DependencyCall: call}
}

// BackendMockHandle is the test handle for Backend.
type BackendMockHandle struct {
	Mock       tui.Backend
	Method     *BackendMockMethods
	Controller *_imptest.Imp
}

// BackendMockHealthArgs holds typed arguments for Health.
type BackendMockHealthArgs struct {
	Ctx context.Context
}

// BackendMockHealthCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type BackendMockHealthCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *BackendMockHealthCall) GetArgs() BackendMockHealthArgs {
	raw := c.RawArgs()
	return BackendMockHealthArgs{
		Ctx: raw[0].(context.Context),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *BackendMockHealthCall) InjectReturnValues(result0 api.Health, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// BackendMockHealthMethod wraps DependencyMethod with typed returns.
type BackendMockHealthMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *BackendMockHealthMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *BackendMockHealthMethod) ExpectCalledWithExactly(ctx context.Context) *BackendMockHealthCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(ctx)
	return &BackendMockHealthCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *BackendMockHealthMethod) ExpectCalledWithMatches(matchers ...any) *BackendMockHealthCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &BackendMockHealthCall{DependencyCall: call}
}

// BackendMockMethods holds method wrappers for setting expectations.
type BackendMockMethods struct {
	Summarize      *BackendMockSummarizeMethod
	Analytics      *BackendMockAnalyticsMethod
	ResetAnalytics *BackendMockResetAnalyticsMethod
	Health         *BackendMockHealthMethod
}

// BackendMockResetAnalyticsArgs holds typed arguments for ResetAnalytics.
type BackendMockResetAnalyticsArgs struct {
	Ctx context.Context
}

// BackendMockResetAnalyticsCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type BackendMockResetAnalyticsCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *BackendMockResetAnalyticsCall) GetArgs() BackendMockResetAnalyticsArgs {
	raw := c.RawArgs()
	return BackendMockResetAnalyticsArgs{
		Ctx: raw[0].(context.Context),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *BackendMockResetAnalyticsCall) InjectReturnValues(result0 error) {
	c.DependencyCall.InjectReturnValues(result0)
}

// BackendMockResetAnalyticsMethod wraps DependencyMethod with typed returns.
type BackendMockResetAnalyticsMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *BackendMockResetAnalyticsMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *BackendMockResetAnalyticsMethod) ExpectCalledWithExactly(ctx context.Context) *BackendMockResetAnalyticsCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(ctx)
	return &BackendMockResetAnalyticsCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *BackendMockResetAnalyticsMethod) ExpectCalledWithMatches(matchers ...any) *BackendMockResetAnalyticsCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &BackendMockResetAnalyticsCall{DependencyCall: call}
}

// BackendMockSummarizeArgs holds typed arguments for Summarize.
type BackendMockSummarizeArgs struct {
	Ctx context.Context
	Req api.SummarizeRequest
}

// BackendMockSummarizeCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type BackendMockSummarizeCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *BackendMockSummarizeCall) GetArgs() BackendMockSummarizeArgs {
	raw := c.RawArgs()
	return BackendMockSummarizeArgs{
		Ctx: raw[0].(context.Context),
		Req: raw[1].(api.SummarizeRequest),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *BackendMockSummarizeCall) InjectReturnValues(result0 api.SummarizeResult, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// BackendMockSummarizeMethod wraps DependencyMethod with typed returns.
type BackendMockSummarizeMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *BackendMockSummarizeMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *BackendMockSummarizeMethod) ExpectCalledWithExactly(ctx context.Context, req api.SummarizeRequest) *BackendMockSummarizeCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(ctx, req)
	return &BackendMockSummarizeCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *BackendMockSummarizeMethod) ExpectCalledWithMatches(matchers ...any) *BackendMockSummarizeCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &BackendMockSummarizeCall{DependencyCall: call}
}

// MockBackend creates a new BackendMockHandle for testing.
func MockBackend(t _imptest.TestReporter) *BackendMockHandle {
	ctrl := _imptest.NewImp(t)
	methods := &BackendMockMethods{
		Summarize:      newBackendMockSummarizeMethod(_imptest.NewDependencyMethod(ctrl, "Summarize")),
		Analytics:      newBackendMockAnalyticsMethod(_imptest.NewDependencyMethod(ctrl, "Analytics")),
		ResetAnalytics: newBackendMockResetAnalyticsMethod(_imptest.NewDependencyMethod(ctrl, "ResetAnalytics")),
		Health:         newBackendMockHealthMethod(_imptest.NewDependencyMethod(ctrl, "Health")),
	}
	h := &BackendMockHandle{
		Method:     methods,
		Controller: ctrl,
	}
	h.Mock = &mockBackendImpl{handle: h}
	return h
}

// mockBackendImpl implements tui.Backend.
type mockBackendImpl struct {
	handle *BackendMockHandle
}

// Analytics implements tui.Backend.Analytics.
func (impl *mockBackendImpl) Analytics(ctx context.Context) (api.AnalyticsSnapshot, error) {
	call := &_imptest.GenericCall{
		MethodName:   "Analytics",
		Args:         []any{ctx},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 api.AnalyticsSnapshot
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(api.AnalyticsSnapshot); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// Health implements tui.Backend.Health.
func (impl *mockBackendImpl) Health(ctx context.Context) (api.Health, error) {
	call := &_imptest.GenericCall{
		MethodName:   "Health",
		Args:         []any{ctx},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 api.Health
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(api.Health); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// ResetAnalytics implements tui.Backend.ResetAnalytics.
func (impl *mockBackendImpl) ResetAnalytics(ctx context.Context) error {
	call := &_imptest.GenericCall{
		MethodName:   "ResetAnalytics",
		Args:         []any{ctx},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 error
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(error); ok {
			result1 = value
		}
	}

	return result1
}

// Summarize implements tui.Backend.Summarize.
func (impl *mockBackendImpl) Summarize(ctx context.Context, req api.SummarizeRequest) (api.SummarizeResult, error) {
	call := &_imptest.GenericCall{
		MethodName:   "Summarize",
		Args:         []any{ctx, req},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 api.SummarizeResult
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(api.SummarizeResult); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// newBackendMockAnalyticsMethod creates a typed method wrapper with Eventually initialized.
func newBackendMockAnalyticsMethod(dm *_imptest.DependencyMethod) *BackendMockAnalyticsMethod {
	m := &BackendMockAnalyticsMethod{DependencyMethod: dm}
	m.Eventually = &BackendMockAnalyticsMethod{DependencyMethod: dm.Eventually}
	return m
}

// newBackendMockHealthMethod creates a typed method wrapper with Eventually initialized.
func newBackendMockHealthMethod(dm *_imptest.DependencyMethod) *BackendMockHealthMethod {
	m := &BackendMockHealthMethod{DependencyMethod: dm}
	m.Eventually = &BackendMockHealthMethod{DependencyMethod: dm.Eventually}
	return m
}

// newBackendMockResetAnalyticsMethod creates a typed method wrapper with Eventually initialized.
func newBackendMockResetAnalyticsMethod(dm *_imptest.DependencyMethod) *BackendMockResetAnalyticsMethod {
	m := &BackendMockResetAnalyticsMethod{DependencyMethod: dm}
	m.Eventually = &BackendMockResetAnalyticsMethod{DependencyMethod: dm.Eventually}
	return m
}

// newBackendMockSummarizeMethod creates a typed method wrapper with Eventually initialized.
func newBackendMockSummarizeMethod(dm *_imptest.DependencyMethod) *BackendMockSummarizeMethod {
	m := &BackendMockSummarizeMethod{DependencyMethod: dm}
	m.Eventually = &BackendMockSummarizeMethod{DependencyMethod: dm.Eventually}
	return m
}
