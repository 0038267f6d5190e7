package game

import (
	"testing"

	"github.com/cbodonnell/blockfall/pkg/game/types"
	"github.com/cbodonnell/blockfall/pkg/queue"
	"github.com/stretchr/testify/assert"
)

func TestLevelManager_HandleLinesCleared(t *testing.T) {
	tests := []struct {
		name      string
		level     uint32
		lines     uint32
		wantScore uint64
	}{
		{name: "single at level 0", level: 0, lines: 1, wantScore: 40},
		{name: "double at level 0", level: 0, lines: 2, wantScore: 100},
		{name: "triple at level 0", level: 0, lines: 3, wantScore: 300},
		{name: "tetris at level 0", level: 0, lines: 4, wantScore: 1200},
		{name: "tetris at level 2", level: 2, lines: 4, wantScore: 3600},
		{name: "single at level 9", level: 9, lines: 1, wantScore: 400},
		{name: "no lines", level: 3, lines: 0, wantScore: 0},
		{name: "more than four lines", level: 0, lines: 5, wantScore: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLevelManager(queue.NewInMemoryQueue[types.Event]())
			m.StartLevel(tt.level)
			m.HandleLinesCleared(tt.lines)
			assert.Equal(t, tt.wantScore, m.Score())
			assert.Equal(t, tt.lines, m.Lines())
		})
	}
}

func TestLevelManager_LevelAdvancesOncePerTenLines(t *testing.T) {
	events := queue.NewInMemoryQueue[types.Event]()
	m := NewLevelManager(events)

	for i := 0; i < 9; i++ {
		m.HandleLinesCleared(1)
	}
	assert.Equal(t, uint32(0), m.Level())
	assert.Empty(t, events.ReadAllMessages())

	m.HandleLinesCleared(1)
	assert.Equal(t, uint32(1), m.Level())
	assert.Equal(t, []types.Event{types.LevelStartedEvent{Level: 1}}, events.ReadAllMessages())

	for i := 0; i < 9; i++ {
		m.HandleLinesCleared(1)
	}
	assert.Equal(t, uint32(1), m.Level())
	assert.Empty(t, events.ReadAllMessages())

	// each boundary crossed is announced once
	m.HandleLinesCleared(4)
	m.HandleLinesCleared(4)
	m.HandleLinesCleared(4)
	assert.Equal(t, uint32(31), m.Lines())
	assert.Equal(t, uint32(3), m.Level())
	assert.Equal(t, []types.Event{
		types.LevelStartedEvent{Level: 2},
		types.LevelStartedEvent{Level: 3},
	}, events.ReadAllMessages())
}

func TestLevelManager_StartLevelHoldsUntilOvertaken(t *testing.T) {
	events := queue.NewInMemoryQueue[types.Event]()
	m := NewLevelManager(events)

	m.StartLevel(5)
	assert.Equal(t, []types.Event{types.LevelStartedEvent{Level: 5}}, events.ReadAllMessages())

	for i := 0; i < 10; i++ {
		m.HandleLinesCleared(1)
	}
	assert.Equal(t, uint32(5), m.Level())
	assert.Equal(t, uint64(10*40*6), m.Score())
	assert.Empty(t, events.ReadAllMessages())

	for i := 0; i < 50; i++ {
		m.HandleLinesCleared(1)
	}
	assert.Equal(t, uint32(6), m.Level())
	assert.Equal(t, []types.Event{types.LevelStartedEvent{Level: 6}}, events.ReadAllMessages())
}

func TestLevelManager_Reset(t *testing.T) {
	events := queue.NewInMemoryQueue[types.Event]()
	m := NewLevelManager(events)
	m.StartLevel(2)
	m.HandleLinesCleared(4)
	events.ClearQueue()

	m.Reset()
	assert.Equal(t, uint32(0), m.Level())
	assert.Equal(t, uint32(0), m.Lines())
	assert.Equal(t, uint64(0), m.Score())
	assert.Equal(t, 0, events.Size())
}
