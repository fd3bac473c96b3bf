package repository

import "time"

type queryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

type instrumented struct {
	metrics queryObserver
}

func (i instrumented) observe(label string, start time.Time) {
	if i.metrics == nil {
		return
	}
	i.metrics.ObserveDBQuery(label, time.Since(start))
}
