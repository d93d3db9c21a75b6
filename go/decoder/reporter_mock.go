// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package decoder is a generated GoMock package.
package decoder

import (
	reflect "reflect"

	corpus "github.com/Fantom-foundation/corpus-decoder/go/corpus"
	reference "github.com/Fantom-foundation/corpus-decoder/go/reference"
	gomock "go.uber.org/mock/gomock"
)

// MockReporter is a mock of Reporter interface.
type MockReporter struct {
	ctrl     *gomock.Controller
	recorder *MockReporterMockRecorder
}

// MockReporterMockRecorder is the mock recorder for MockReporter.
type MockReporterMockRecorder struct {
	mock *MockReporter
}

// NewMockReporter creates a new mock instance.
func NewMockReporter(ctrl *gomock.Controller) *MockReporter {
	mock := &MockReporter{ctrl: ctrl}
	mock.recorder = &MockReporterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReporter) EXPECT() *MockReporterMockRecorder {
	return m.recorder
}

// Begin mocks base method.
func (m *MockReporter) Begin(path string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Begin", path)
}

// Begin indicates an expected call of Begin.
func (mr *MockReporterMockRecorder) Begin(path any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockReporter)(nil).Begin), path)
}

// Record mocks base method.
func (m *MockReporter) Record(record *corpus.Record) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Record", record)
}

// Record indicates an expected call of Record.
func (mr *MockReporterMockRecorder) Record(record any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Record", reflect.TypeOf((*MockReporter)(nil).Record), record)
}

// Result mocks base method.
func (m *MockReporter) Result(result reference.Result) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Result", result)
}

// Result indicates an expected call of Result.
func (mr *MockReporterMockRecorder) Result(result any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Result", reflect.TypeOf((*MockReporter)(nil).Result), result)
}

// Vector mocks base method.
func (m *MockReporter) Vector(vector reference.Vector) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Vector", vector)
}

// Vector indicates an expected call of Vector.
func (mr *MockReporterMockRecorder) Vector(vector any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Vector", reflect.TypeOf((*MockReporter)(nil).Vector), vector)
}

// Warn mocks base method.
func (m *MockReporter) Warn(err error) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Warn", err)
}

// Warn indicates an expected call of Warn.
func (mr *MockReporterMockRecorder) Warn(err any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*MockReporter)(nil).Warn), err)
}
