package metrics

import (
	"sync/atomic"
	"time"

	"judgment/game"
)

type SearchMetric struct {
	Goroutines  int
	Exploration float64
	Duration    time.Duration
	Episodes    int
	Rollouts    int // Terminal utilities sampled
	Expansions  int // Nodes materialized by expansion
	IsTreeReset bool
}

type MoveMetric struct {
	Step   int
	Side   game.Side
	Action game.Action
	SearchMetric
}

type GameMetric struct {
	MCTSSide   game.Side // Side controlled by the searching agent, NoSide if none
	Utility    game.Utility
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(goroutines int, exploration float64)
	SetTreeReset(value bool)
	AddRollout()
	AddExpansion(children int)
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	goroutines  int
	exploration float64
	startTime   time.Time
	episodes    atomic.Int32
	rollouts    atomic.Int32
	expansions  atomic.Int32
	isTreeReset atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) SetTreeReset(value bool) {
	m.isTreeReset.Store(value)
}

// Start resets the counters for a new search.
func (m *collector) Start(goroutines int, exploration float64) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.exploration = exploration
	m.episodes.Store(0)
	m.rollouts.Store(0)
	m.expansions.Store(0)
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) AddExpansion(children int) {
	m.expansions.Add(int32(children))
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:  m.goroutines,
		Exploration: m.exploration,
		Duration:    time.Since(m.startTime),
		Episodes:    int(m.episodes.Load()),
		Rollouts:    int(m.rollouts.Load()),
		Expansions:  int(m.expansions.Load()),
		IsTreeReset: m.isTreeReset.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int, exploration float64) {}
func (m *dummyCollector) SetTreeReset(value bool)                   {}
func (m *dummyCollector) AddRollout()                               {}
func (m *dummyCollector) AddExpansion(children int)                 {}
func (m *dummyCollector) AddEpisode()                               {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
