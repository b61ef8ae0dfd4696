// Package channel holds the decoded channel model and the two transformations
// that follow decoding: time-channel resolution and group building.
//
// A catman file stores a flat list of named sample sequences. Which of them is
// a time axis is not marked in the format; catman convention is that time
// channels carry "time" (or "Zeit" on German installations) in their name and
// have the same entry count as the channels sampled against them. Resolve
// applies that convention, and BuildGroups partitions the channels so that
// each group is one time axis plus everything recorded against it.
//
// Channels reference their time axis by index into the decoded channel slice,
// not by pointer, so identity survives copying and the grouping phase needs no
// reference-equality assumptions.
package channel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/strainstack/catread/format"
	"github.com/strainstack/catread/section"
)

// Kind classifies a channel after resolution.
type Kind uint8

const (
	// KindData is a regular data channel.
	KindData Kind = iota
	// KindTimeCandidate is a channel whose name marks it as a time axis.
	KindTimeCandidate
	// KindUnresolved is a data channel with no matching time axis, or a
	// structurally invalid channel excluded from matching.
	KindUnresolved
)

func (k Kind) String() string {
	switch k {
	case KindData:
		return "Data"
	case KindTimeCandidate:
		return "TimeCandidate"
	case KindUnresolved:
		return "Unresolved"
	default:
		return "Unknown"
	}
}

// NoTime marks a channel without a resolved time axis.
const NoTime = -1

// Channel is one decoded channel: its identity and metadata from the channel
// header plus the decoded samples. Samples are fixed at decode time and never
// mutated afterward.
type Channel struct {
	// Name as stored in the file; free text, not guaranteed unique.
	Name string
	// Unit of the samples.
	Unit string
	// Comment is the per-channel comment from the file.
	Comment string
	// Samples are the decoded values, one per declared entry.
	Samples []float64
	// Kind is assigned by Resolve; channels start out as KindData.
	Kind Kind
	// TimeIndex is the position of this channel's time axis in the decoded
	// channel slice, or NoTime. Assigned exactly once by Resolve.
	TimeIndex int

	// Metadata carried through from the channel header.
	Index      int16
	Format     format.ChannelFormat
	ReadTime   float64
	Precision  format.Precision
	Ext        section.ExtHeader
	Formula    string
	SensorInfo string
}

// New creates a Channel from its parsed header and decoded samples.
func New(hdr *section.ChannelHeader, samples []float64) *Channel {
	return &Channel{
		Name:       hdr.Name,
		Unit:       hdr.Unit,
		Comment:    hdr.Comment,
		Samples:    samples,
		Kind:       KindData,
		TimeIndex:  NoTime,
		Index:      hdr.Index,
		Format:     hdr.Format,
		ReadTime:   hdr.ReadTime,
		Precision:  hdr.Ext.Precision(),
		Ext:        hdr.Ext,
		Formula:    hdr.Formula,
		SensorInfo: hdr.SensorInfo,
	}
}

// Len returns the number of samples.
func (c *Channel) Len() int {
	return len(c.Samples)
}

// summaryEdge is how many leading and trailing samples String includes.
const summaryEdge = 3

// String returns a bounded summary: name, length and the first/last few
// samples. Use WriteValues to dump every sample.
func (c *Channel) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d samples", c.Name, len(c.Samples))
	if c.Unit != "" {
		fmt.Fprintf(&sb, ", %s", c.Unit)
	}
	sb.WriteString(")")

	if len(c.Samples) == 0 {
		return sb.String()
	}

	sb.WriteString(" [")
	if len(c.Samples) <= 2*summaryEdge {
		appendSamples(&sb, c.Samples)
	} else {
		appendSamples(&sb, c.Samples[:summaryEdge])
		sb.WriteString(" ... ")
		appendSamples(&sb, c.Samples[len(c.Samples)-summaryEdge:])
	}
	sb.WriteString("]")

	return sb.String()
}

func appendSamples(sb *strings.Builder, samples []float64) {
	for i, v := range samples {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
}

// WriteValues writes every sample to w, one per line.
func (c *Channel) WriteValues(w io.Writer) error {
	for _, v := range c.Samples {
		if _, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
	}

	return nil
}
