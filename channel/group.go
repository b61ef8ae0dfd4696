package channel

import (
	"fmt"
	"time"
)

// Group is one time axis plus every data channel resolved to it. Unresolved
// channels form singleton groups with a nil time axis, so the partition over
// a decoded file is total: every channel belongs to exactly one group.
type Group struct {
	// Time anchors the group; nil for singletons of unresolved channels.
	Time *Channel
	// Data are the group's data channels in file order.
	Data []*Channel
}

// BuildGroups partitions resolved channels into groups.
//
// Channels sharing a TimeIndex share a group. Group order follows the first
// appearance of each distinct time axis (or each unresolved channel) in file
// order, so group numbering is reproducible across runs. Time candidates with
// no dependents still get their own group. Pure transformation: the input
// slice is not modified.
func BuildGroups(channels []*Channel) []Group {
	var groups []Group
	byTime := make(map[int]int) // time axis index -> position in groups

	groupFor := func(timeIdx int) int {
		if g, ok := byTime[timeIdx]; ok {
			return g
		}
		groups = append(groups, Group{Time: channels[timeIdx]})
		byTime[timeIdx] = len(groups) - 1

		return len(groups) - 1
	}

	for i, c := range channels {
		switch {
		case c.Kind == KindTimeCandidate:
			groupFor(i)
		case c.Kind == KindData && c.TimeIndex != NoTime:
			g := groupFor(c.TimeIndex)
			groups[g].Data = append(groups[g].Data, c)
		default:
			groups = append(groups, Group{Data: []*Channel{c}})
		}
	}

	return groups
}

// Name returns the group's display name: the time channel's name, or the
// first data channel's name for unresolved singletons.
func (g *Group) Name() string {
	if g.Time != nil {
		return g.Time.Name
	}
	if len(g.Data) > 0 {
		return g.Data[0].Name
	}

	return ""
}

// Len returns the group's sample count, taken from the time axis when
// present.
func (g *Group) Len() int {
	if g.Time != nil {
		return g.Time.Len()
	}
	if len(g.Data) > 0 {
		return g.Data[0].Len()
	}

	return 0
}

// SampleInterval returns the spacing between the first two samples of the
// time axis, or 0 when the group has no usable time axis.
func (g *Group) SampleInterval() time.Duration {
	dt := g.timeStep()
	if dt <= 0 {
		return 0
	}

	return time.Duration(dt * float64(time.Second))
}

// Frequency returns the sampling rate in Hz derived from the time axis, or 0
// when the group has no usable time axis.
func (g *Group) Frequency() float64 {
	dt := g.timeStep()
	if dt <= 0 {
		return 0
	}

	return 1 / dt
}

// IntervalString formats the sample interval with a unit fitting its
// magnitude.
func (g *Group) IntervalString() string {
	dt := g.timeStep()
	if dt <= 0 {
		return "n/a"
	}

	unit := "s"
	fac := 1.0
	switch {
	case dt < 1e-6:
		unit, fac = "ns", 1e9
	case dt < 1e-3:
		unit, fac = "µs", 1e6
	case dt < 1:
		unit, fac = "ms", 1e3
	}

	return fmt.Sprintf("%.3f%s", dt*fac, unit)
}

func (g *Group) timeStep() float64 {
	if g.Time == nil || g.Time.Len() < 2 {
		return 0
	}

	return g.Time.Samples[1] - g.Time.Samples[0]
}
