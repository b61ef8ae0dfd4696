package catread

import (
	"fmt"

	"github.com/strainstack/catread/channel"
	"github.com/strainstack/catread/errs"
	"github.com/strainstack/catread/format"
	"github.com/strainstack/catread/internal/hash"
)

// DecodedFile is the result of decoding one catman file: every channel in
// file order, the resolved groups and the per-channel resolution issues.
//
// The DecodedFile owns its channels and groups. Consumers (export, plotting)
// only read; Channels and Groups keep a stable iteration order across runs of
// the same input.
type DecodedFile struct {
	// SourceName identifies the file, without directory or extension. Used
	// for derived output names.
	SourceName string
	// Comment is the file comment from the header.
	Comment string
	// Archive records the outer compression the input arrived in, if any.
	Archive format.ArchiveType
	// Channels in file order.
	Channels []*channel.Channel
	// Groups is the total partition of Channels built after resolution.
	Groups []channel.Group
	// Issues are the non-fatal per-channel resolution problems, aggregated
	// over the whole file.
	Issues []channel.Issue

	byName map[uint64]int
}

func newDecodedFile(sourceName, comment string, archive format.ArchiveType, channels []*channel.Channel) *DecodedFile {
	f := &DecodedFile{
		SourceName: sourceName,
		Comment:    comment,
		Archive:    archive,
		Channels:   channels,
		byName:     make(map[uint64]int, len(channels)),
	}

	// Earliest declared channel wins the lookup slot; names are not
	// guaranteed unique.
	for i, c := range channels {
		id := hash.ID(c.Name)
		if _, ok := f.byName[id]; !ok {
			f.byName[id] = i
		}
	}

	return f
}

// ChannelByName returns the earliest declared channel with the given name.
func (f *DecodedFile) ChannelByName(name string) (*channel.Channel, error) {
	if i, ok := f.byName[hash.ID(name)]; ok && f.Channels[i].Name == name {
		return f.Channels[i], nil
	}

	// Hash slot taken by a colliding name; fall back to a scan.
	for _, c := range f.Channels {
		if c.Name == name {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", errs.ErrChannelNotFound, name)
}

// TimeOf returns the resolved time axis of c, or nil when c has none.
func (f *DecodedFile) TimeOf(c *channel.Channel) *channel.Channel {
	if c.TimeIndex == channel.NoTime || c.TimeIndex >= len(f.Channels) {
		return nil
	}

	return f.Channels[c.TimeIndex]
}

// String returns a bounded, one-line-per-channel summary of the file.
func (f *DecodedFile) String() string {
	s := fmt.Sprintf("%s: %d channels, %d groups", f.SourceName, len(f.Channels), len(f.Groups))
	for _, c := range f.Channels {
		s += "\n  " + c.String()
	}

	return s
}
