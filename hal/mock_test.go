package hal

import (
	"fmt"
	"strings"

	"github.com/stretchr/testify/mock"
)

type mockUART struct {
	mock.Mock
}

func (m *mockUART) TxFull() bool       { return m.Called().Bool(0) }
func (m *mockUART) WriteTxData(b byte) { m.Called(b) }
func (m *mockUART) RxEmpty() bool      { return m.Called().Bool(0) }
func (m *mockUART) ReadRxData() byte   { return m.Called().Get(0).(byte) }

type mockTimer struct {
	mock.Mock
}

func (m *mockTimer) Enable()                { m.Called() }
func (m *mockTimer) Disable()               { m.Called() }
func (m *mockTimer) SetReload(v uint32)     { m.Called(v) }
func (m *mockTimer) SetCounter(v uint32)    { m.Called(v) }
func (m *mockTimer) LoadCounter() uint32    { return m.Called().Get(0).(uint32) }
func (m *mockTimer) Elapsed() bool          { return m.Called().Bool(0) }
func (m *mockTimer) SetEventEnable(on bool) { m.Called(on) }
func (m *mockTimer) EventPending() bool     { return m.Called().Bool(0) }
func (m *mockTimer) ClearEventPending()     { m.Called() }

// newMockTimer returns a timer that accepts any countdown and reports it
// elapsed after the given number of polls.
func newMockTimer(polls int) *mockTimer {
	m := new(mockTimer)
	m.On("Disable").Return()
	m.On("SetReload", uint32(0)).Return()
	m.On("SetCounter", mock.Anything).Return()
	m.On("Enable").Return()
	if polls > 0 {
		m.On("Elapsed").Return(false).Times(polls)
	}
	m.On("Elapsed").Return(true)
	return m
}

// calls returns the method names and arguments of all recorded calls.
func calls(m *mock.Mock) []string {
	var s []string
	for _, c := range m.Calls {
		s = append(s, c.Method)
		for _, a := range c.Arguments {
			s = append(s, fmt.Sprint(a))
		}
	}
	return s
}

type stringLogger struct {
	strings.Builder
}

func (l *stringLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&l.Builder, format, args...)
	l.WriteByte('\n')
}
