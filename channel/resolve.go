package channel

import (
	"fmt"
	"strings"

	"github.com/strainstack/catread/errs"
)

// timeNameMarkers are the case-insensitive substrings that mark a channel as a
// time axis. Catman writes "Time" or "Zeit" depending on the installation
// locale.
var timeNameMarkers = []string{"time", "zeit"}

// IsTimeName reports whether a channel name marks a time axis.
func IsTimeName(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range timeNameMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}

// AmbiguityPolicy decides between multiple equal-length time candidates for
// one data channel. dataIndex and candidates are positions in the decoded
// channel slice; candidates are in file order. Returning ok=false declines
// the decision and leaves the channel unresolved.
//
// An interactive caller can supply a policy that prompts; the library itself
// never blocks.
type AmbiguityPolicy func(dataIndex int, candidates []int, channels []*Channel) (int, bool)

// EarliestDeclared is the default AmbiguityPolicy: it picks the time
// candidate declared first in file order. Deterministic across runs by
// construction.
func EarliestDeclared(_ int, candidates []int, _ []*Channel) (int, bool) {
	return candidates[0], true
}

// Issue records a non-fatal, per-channel resolution problem. Issues are
// collected during Resolve and surfaced in aggregate so that one bad channel
// never fails the rest of the file.
type Issue struct {
	// ChannelIndex is the channel's position in file order.
	ChannelIndex int
	// Name is the channel name, kept for reporting.
	Name string
	// Err is the underlying condition; match with errors.Is against
	// errs.ErrEmptyChannel or errs.ErrAmbiguousTimeChannel.
	Err error
}

func (i Issue) String() string {
	return fmt.Sprintf("channel %d (%q): %v", i.ChannelIndex, i.Name, i.Err)
}

// Resolve classifies every channel and assigns each data channel its time
// axis.
//
// A channel is a time candidate iff IsTimeName matches. For each data channel
// the candidates with an identical entry count form the match set: exactly
// one match assigns it directly; several defer to policy (nil policy leaves
// the channel unresolved); none leaves the channel unresolved. Unresolved is
// a state, not an error: the channel stays usable for raw inspection and
// export.
//
// Zero-length channels are excluded from matching and reported as issues.
// Resolve mutates Kind and TimeIndex in place and is idempotent only on a
// freshly decoded slice; it never reorders channels.
func Resolve(channels []*Channel, policy AmbiguityPolicy) []Issue {
	var issues []Issue

	// Classification pass. Degenerate channels drop out of matching entirely:
	// an empty time axis must not anchor a group.
	var timeIndexes []int
	for i, c := range channels {
		if len(c.Samples) == 0 {
			c.Kind = KindUnresolved
			c.TimeIndex = NoTime
			issues = append(issues, Issue{ChannelIndex: i, Name: c.Name, Err: errs.ErrEmptyChannel})

			continue
		}
		if IsTimeName(c.Name) {
			c.Kind = KindTimeCandidate
			c.TimeIndex = NoTime
			timeIndexes = append(timeIndexes, i)
		} else {
			c.Kind = KindData
		}
	}

	// Association pass.
	for i, c := range channels {
		if c.Kind != KindData {
			continue
		}

		var matches []int
		for _, ti := range timeIndexes {
			if len(channels[ti].Samples) == len(c.Samples) {
				matches = append(matches, ti)
			}
		}

		switch {
		case len(matches) == 1:
			c.TimeIndex = matches[0]
		case len(matches) > 1:
			picked := NoTime
			if policy != nil {
				if p, ok := policy(i, matches, channels); ok {
					picked = p
				}
			}
			if picked == NoTime {
				c.Kind = KindUnresolved
				c.TimeIndex = NoTime
				issues = append(issues, Issue{
					ChannelIndex: i,
					Name:         c.Name,
					Err:          fmt.Errorf("%w: %d candidates, none chosen", errs.ErrAmbiguousTimeChannel, len(matches)),
				})
			} else {
				c.TimeIndex = picked
				issues = append(issues, Issue{
					ChannelIndex: i,
					Name:         c.Name,
					Err: fmt.Errorf("%w: %d candidates, assigned %q",
						errs.ErrAmbiguousTimeChannel, len(matches), channels[picked].Name),
				})
			}
		default:
			c.Kind = KindUnresolved
			c.TimeIndex = NoTime
		}
	}

	return issues
}
