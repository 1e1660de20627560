// Code generated by impgen. DO NOT EDIT.

package headless_test

import (
	context "context"
	headless "github.com/joe/summarize-client/internal/headless"
	api "github.com/joe/summarize-client/pkg/api"
	_imptest "github.com/toejough/imptest/imptest"
)

// SummarizerMockBatchSummarizeArgs holds typed arguments for BatchSummarize.
type SummarizerMockBatchSummarizeArgs struct {
	Ctx context.Context
	Req api.BatchRequest
}

// SummarizerMockBatchSummarizeCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type SummarizerMockBatchSummarizeCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *SummarizerMockBatchSummarizeCall) GetArgs() SummarizerMockBatchSummarizeArgs {
	raw := c.RawArgs()
	return SummarizerMockBatchSummarizeArgs{
		Ctx: raw[0].(context.Context),
		Req: raw[1].(api.BatchRequest),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *SummarizerMockBatchSummarizeCall) InjectReturnValues(result0 api.BatchResult, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// SummarizerMockBatchSummarizeMethod wraps DependencyMethod with typed returns.
type SummarizerMockBatchSummarizeMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *SummarizerMockBatchSummarizeMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *SummarizerMockBatchSummarizeMethod) ExpectCalledWithExactly(ctx context.Context, req api.BatchRequest) *SummarizerMockBatchSummarizeCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(ctx, req)
	return &SummarizerMockBatchSummarizeCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *SummarizerMockBatchSummarizeMethod) ExpectCalledWithMatches(matchers ...any) *SummarizerMockBatchSummarizeCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &SummarizerMockBatchSummarizeCall{DependencyCall: call}
}

// SummarizerMockHandle is the test handle for Summarizer.
type SummarizerMockHandle struct {
	Mock       headless.Summarizer
	Method     *SummarizerMockMethods
	Controller *_imptest.Imp
}

// SummarizerMockMethods holds method wrappers for setting expectations.
type SummarizerMockMethods struct {
	Summarize      *SummarizerMockSummarizeMethod
	BatchSummarize *SummarizerMockBatchSummarizeMethod
}

// SummarizerMockSummarizeArgs holds typed arguments for Summarize.
type SummarizerMockSummarizeArgs struct {
	Ctx context.Context
	Req api.SummarizeRequest
}

// SummarizerMockSummarizeCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type SummarizerMockSummarizeCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *SummarizerMockSummarizeCall) GetArgs() SummarizerMockSummarizeArgs {
	raw := c.RawArgs()
	return SummarizerMockSummarizeArgs{
		Ctx: raw[0].(context.Context),
		Req: raw[1].(api.SummarizeRequest),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *SummarizerMockSummarizeCall) InjectReturnValues(result0 api.SummarizeResult, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// SummarizerMockSummarizeMethod wraps DependencyMethod with typed returns.
type SummarizerMockSummarizeMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *SummarizerMockSummarizeMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *SummarizerMockSummarizeMethod) ExpectCalledWithExactly(ctx context.Context, req api.SummarizeRequest) *SummarizerMockSummarizeCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(ctx, req)
	return &SummarizerMockSummarizeCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *SummarizerMockSummarizeMethod) ExpectCalledWithMatches(matchers ...any) *SummarizerMockSummarizeCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &SummarizerMockSummarizeCall{DependencyCall: call}
}

// MockSummarizer creates a new SummarizerMockHandle for testing.
func MockSummarizer(t _imptest.TestReporter) *SummarizerMockHandle {
	ctrl := _imptest.NewImp(t)
	methods := &SummarizerMockMethods{
		Summarize:      newSummarizerMockSummarizeMethod(_imptest.NewDependencyMethod(ctrl, "Summarize")),
		BatchSummarize: newSummarizerMockBatchSummarizeMethod(_imptest.NewDependencyMethod(ctrl, "BatchSummarize")),
	}
	h := &SummarizerMockHandle{
		Method:     methods,
		Controller: ctrl,
	}
	h.Mock = &mockSummarizerImpl{handle: h}
	return h
}

// mockSummarizerImpl implements headless.Summarizer.
type mockSummarizerImpl struct {
	handle *SummarizerMockHandle
}

// BatchSummarize implements headless.Summarizer.BatchSummarize.
func (impl *mockSummarizerImpl) BatchSummarize(ctx context.Context, req api.BatchRequest) (api.BatchResult, error) {
	call := &_imptest.GenericCall{
		MethodName:   "BatchSummarize",
		Args:         []any{ctx, req},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 api.BatchResult
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(api.BatchResult); ok {
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

// Summarize implements headless.Summarizer.Summarize.
func (impl *mockSummarizerImpl) Summarize(ctx context.Context, req api.SummarizeRequest) (api.SummarizeResult, error) {
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

// newSummarizerMockBatchSummarizeMethod creates a typed method wrapper with Eventually initialized.
func newSummarizerMockBatchSummarizeMethod(dm *_imptest.DependencyMethod) *SummarizerMockBatchSummarizeMethod {
	m := &SummarizerMockBatchSummarizeMethod{DependencyMethod: dm}
	m.Eventually = &SummarizerMockBatchSummarizeMethod{DependencyMethod: dm.Eventually}
	return m
}

// newSummarizerMockSummarizeMethod creates a typed method wrapper with Eventually initialized.
func newSummarizerMockSummarizeMethod(dm *_imptest.DependencyMethod) *SummarizerMockSummarizeMethod {
	m := &SummarizerMockSummarizeMethod{DependencyMethod: dm}
	m.Eventually = &SummarizerMockSummarizeMethod{DependencyMethod: dm.Eventually}
	return m
}
