package match

import "github.com/kaitongg-bit/course-pilot/core"

// MatchMonitor provides hooks to observe the match process.
// Implement this interface to track intermediate steps during ranking.
type MatchMonitor interface {
	Start(query string)
	AfterSemanticSearch(candidates []core.Candidate)
	KeywordFallback(err error)
	ScheduleRejected(code string)
	AfterRanking(scored []core.ScoredCourse)
	Finish(results []core.CourseResult)
}

// noopMonitor is a no-op implementation of MatchMonitor
type noopMonitor struct{}

var _ MatchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) AfterSemanticSearch(_ []core.Candidate)  {}
func (n *noopMonitor) KeywordFallback(_ error)                 {}
func (n *noopMonitor) ScheduleRejected(_ string)               {}
func (n *noopMonitor) AfterRanking(_ []core.ScoredCourse)      {}
func (n *noopMonitor) Finish(_ []core.CourseResult)            {}
