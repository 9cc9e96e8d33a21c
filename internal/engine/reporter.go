package engine

import "math/big"

// Reporter observes engine progress: every finished trick, every hand's
// score delta and the final result. Finished tricks and hands are immutable,
// so observers may hold onto them.
type Reporter interface {
	ReportTrickCompleted(trick *Trick)
	ReportHandCompleted(hand *Hand)
	ReportMatchCompleted(scores []*big.Rat, winner int)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) ReportTrickCompleted(*Trick)          {}
func (NopReporter) ReportHandCompleted(*Hand)            {}
func (NopReporter) ReportMatchCompleted([]*big.Rat, int) {}
