package searcher

import (
	"time"
)

type MoveMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Candidates int
	BestScore  int
	Scores     []int // Safety of each candidate in the order evaluated
}

type MetricsCollector interface {
	Start()
	AddCandidate(score int)
	SetBestScore(score int)
	Complete() MoveMetrics
	// Last returns the metrics of the most recently completed decision
	Last() MoveMetrics
}

type metricsCollector struct {
	startTime  time.Time
	candidates int
	bestScore  int
	scores     []int
	last       MoveMetrics
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.candidates = 0
	m.bestScore = 0
	m.scores = nil
}

func (m *metricsCollector) AddCandidate(score int) {
	m.candidates++
	m.scores = append(m.scores, score)
}

func (m *metricsCollector) SetBestScore(score int) {
	m.bestScore = score
}

func (m *metricsCollector) Complete() MoveMetrics {
	m.last = MoveMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Candidates: m.candidates,
		BestScore:  m.bestScore,
		Scores:     m.scores,
	}
	return m.last
}

func (m *metricsCollector) Last() MoveMetrics {
	return m.last
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                {}
func (m *noMetricsCollector) AddCandidate(int)      {}
func (m *noMetricsCollector) SetBestScore(int)      {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
func (m *noMetricsCollector) Last() MoveMetrics     { return MoveMetrics{} }
