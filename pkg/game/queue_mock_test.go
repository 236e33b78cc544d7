package game

import (
	"github.com/cbodonnell/crabsweeper/pkg/queue"
	"github.com/stretchr/testify/mock"
)

type mockQueue struct {
	mock.Mock
}

var _ queue.Queue[Command] = &mockQueue{}

func (m *mockQueue) Enqueue(item Command) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *mockQueue) Size() int {
	args := m.Called()
	return args.Int(0)
}

func (m *mockQueue) ReadAll() []Command {
	args := m.Called()
	commands, _ := args.Get(0).([]Command)
	return commands
}

func (m *mockQueue) Clear() {
	m.Called()
}
