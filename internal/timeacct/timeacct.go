// Package timeacct derives elapsed production time from start/stop process
// events.
//
// Events are partitioned by process number and ordered by timestamp. A stop
// event that directly follows a start event in the same partition closes an
// interval worth the whole minutes between the two timestamps (truncated, the
// way TIMESTAMPDIFF(MINUTE, ...) counts). Every other adjacency contributes
// zero minutes. Such malformed sequences are not errors: they are reported as
// anomalies next to the computed totals so callers can log them.
package timeacct

import (
	"cmp"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// Interval is a matched start -> stop pair.
type Interval struct {
	Start   time.Time
	Stop    time.Time
	Minutes int64
}

// ProcessTotal is the elapsed time of one process station.
type ProcessTotal struct {
	ProcessNumber *int
	Minutes       int64
	Intervals     []Interval
}

// AnomalyKind classifies an event that did not take part in an interval.
type AnomalyKind string

const (
	// AnomalyUnmatchedStop is a stop with no start directly before it.
	AnomalyUnmatchedStop AnomalyKind = "unmatched_stop"
	// AnomalyRepeatedStart is a start directly followed by another start.
	AnomalyRepeatedStart AnomalyKind = "repeated_start"
	// AnomalyOpenStart is a trailing start that has not been stopped yet.
	AnomalyOpenStart AnomalyKind = "open_start"
	// AnomalyUnknownStatus is an event whose status is neither start nor stop.
	AnomalyUnknownStatus AnomalyKind = "unknown_status"
)

// Anomaly describes one event that contributed zero minutes.
type Anomaly struct {
	ProcessNumber *int
	Kind          AnomalyKind
	At            time.Time
}

// Result is the outcome of Compute.
type Result struct {
	TotalMinutes int64
	Processes    []ProcessTotal
	Anomalies    []Anomaly
}

// Malformed reports whether any event was absorbed as zero duration.
func (r Result) Malformed() bool {
	return len(r.Anomalies) > 0
}

// Process returns the total for one process number, or a zero total when
// the process has no events.
func (r Result) Process(n *int) ProcessTotal {
	key := keyOf(n)
	for _, p := range r.Processes {
		if keyOf(p.ProcessNumber) == key {
			return p
		}
	}
	return ProcessTotal{ProcessNumber: n}
}

type partitionKey struct {
	valid bool
	n     int
}

func keyOf(n *int) partitionKey {
	if n == nil {
		return partitionKey{}
	}
	return partitionKey{valid: true, n: *n}
}

func (k partitionKey) number() *int {
	if !k.valid {
		return nil
	}
	n := k.n
	return &n
}

func comparePartitionKeys(a, b partitionKey) int {
	if a.valid != b.valid {
		if !a.valid {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.n, b.n)
}

// Compute pairs start/stop events per process and sums the elapsed minutes.
// The input slice is not modified. An empty input yields a zero Result.
func Compute(events []domain.ProcessEvent) Result {
	partitions := lo.GroupBy(events, func(e domain.ProcessEvent) partitionKey {
		return keyOf(e.ProcessNumber)
	})

	keys := lo.Keys(partitions)
	slices.SortFunc(keys, comparePartitionKeys)

	res := Result{Processes: make([]ProcessTotal, 0, len(keys))}
	for _, key := range keys {
		total, anomalies := pair(key, partitions[key])
		res.Processes = append(res.Processes, total)
		res.Anomalies = append(res.Anomalies, anomalies...)
		res.TotalMinutes += total.Minutes
	}

	return res
}

// pair walks one partition in timestamp order.
func pair(key partitionKey, events []domain.ProcessEvent) (ProcessTotal, []Anomaly) {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b domain.ProcessEvent) int {
		return a.LoggedAt.Compare(b.LoggedAt)
	})

	total := ProcessTotal{ProcessNumber: key.number()}
	var anomalies []Anomaly

	anomaly := func(kind AnomalyKind, at time.Time) {
		anomalies = append(anomalies, Anomaly{ProcessNumber: key.number(), Kind: kind, At: at})
	}

	for i, e := range sorted {
		var prev *domain.ProcessEvent
		if i > 0 {
			prev = &sorted[i-1]
		}

		switch e.Status {
		case domain.EventStatusStop:
			if prev == nil || prev.Status != domain.EventStatusStart {
				anomaly(AnomalyUnmatchedStop, e.LoggedAt)
				continue
			}
			minutes := MinutesBetween(prev.LoggedAt, e.LoggedAt)
			total.Intervals = append(total.Intervals, Interval{
				Start:   prev.LoggedAt,
				Stop:    e.LoggedAt,
				Minutes: minutes,
			})
			total.Minutes += minutes
		case domain.EventStatusStart:
			if prev != nil && prev.Status == domain.EventStatusStart {
				anomaly(AnomalyRepeatedStart, prev.LoggedAt)
			}
		default:
			anomaly(AnomalyUnknownStatus, e.LoggedAt)
		}
	}

	if n := len(sorted); n > 0 && sorted[n-1].Status == domain.EventStatusStart {
		anomaly(AnomalyOpenStart, sorted[n-1].LoggedAt)
	}

	return total, anomalies
}
