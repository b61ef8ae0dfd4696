package catread

import (
	"fmt"

	"github.com/strainstack/catread/channel"
	"github.com/strainstack/catread/compress"
	"github.com/strainstack/catread/errs"
	"github.com/strainstack/catread/format"
	"github.com/strainstack/catread/section"
)

// Decoder decodes one catman byte stream into channels.
//
// Decoding is whole-file atomic: either every channel decodes or the first
// structural inconsistency fails the decode with a format error and no
// partial result. The Decoder is not reusable and not safe for concurrent
// use; decode each file with its own Decoder.
type Decoder struct {
	cfg     *config
	reader  *section.Reader
	header  section.FileHeader
	archive format.ArchiveType
	decoded bool
}

// NewDecoder unwraps archived input, validates the file header and prepares
// for decoding. The channel headers and payload are not touched until
// Decode.
func NewDecoder(data []byte, opts ...Option) (*Decoder, error) {
	cfg := newConfig()
	if err := applyOptions(cfg, opts); err != nil {
		return nil, err
	}

	raw, archive, err := compress.Unwrap(data)
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		cfg:     cfg,
		reader:  section.NewReader(raw),
		archive: archive,
	}
	if err := d.header.Parse(d.reader); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode decodes all channel headers and payloads, resolves time channels and
// builds groups.
func (d *Decoder) Decode() (*DecodedFile, error) {
	if d.decoded {
		return nil, fmt.Errorf("catread: decoder is not reusable")
	}
	d.decoded = true

	headers, err := d.parseChannelHeaders()
	if err != nil {
		return nil, err
	}

	channels, err := d.decodePayloads(headers)
	if err != nil {
		return nil, err
	}

	file := newDecodedFile(d.cfg.sourceName, d.header.Comment, d.archive, channels)
	if d.cfg.noResolve {
		return file, nil
	}

	file.Issues = channel.Resolve(channels, d.cfg.policy)
	file.Groups = channel.BuildGroups(channels)

	return file, nil
}

func (d *Decoder) parseChannelHeaders() ([]section.ChannelHeader, error) {
	count := int(d.header.ChannelCount)
	headers := make([]section.ChannelHeader, count)
	for i := range headers {
		if err := headers[i].Parse(d.reader); err != nil {
			return nil, fmt.Errorf("channel header %d: %w", i, err)
		}
		if headers[i].Format != format.FormatNumeric {
			return nil, fmt.Errorf("channel %q: %w: %s",
				headers[i].Name, errs.ErrUnsupportedChannelFormat, headers[i].Format)
		}
	}

	return headers, nil
}

func (d *Decoder) decodePayloads(headers []section.ChannelHeader) ([]*channel.Channel, error) {
	if err := d.reader.Seek(int(d.header.DataOffset)); err != nil {
		return nil, fmt.Errorf("%w: payload start %d", errs.ErrInvalidDataOffset, d.header.DataOffset)
	}

	channels := make([]*channel.Channel, len(headers))
	for i := range headers {
		hdr := &headers[i]
		if d.reader.Remaining() < hdr.PayloadSize() {
			return nil, fmt.Errorf("channel %q: %w: %d entries need %d bytes, %d remain",
				hdr.Name, errs.ErrEntryCountMismatch, hdr.EntryCount, hdr.PayloadSize(), d.reader.Remaining())
		}

		samples, err := d.decodeSamples(hdr)
		if err != nil {
			return nil, fmt.Errorf("channel %q: %w", hdr.Name, err)
		}
		channels[i] = channel.New(hdr, samples)

		if d.cfg.progress != nil {
			d.cfg.progress(i+1, len(headers))
		}
	}

	return channels, nil
}

func (d *Decoder) decodeSamples(hdr *section.ChannelHeader) ([]float64, error) {
	n := int(hdr.EntryCount)
	samples := make([]float64, n)

	switch hdr.Ext.Precision() {
	case format.PrecisionSingle:
		for i := range samples {
			v, err := d.reader.Float32()
			if err != nil {
				return nil, err
			}
			samples[i] = float64(v)
		}
	case format.PrecisionScaled:
		lo, err := d.reader.Float64()
		if err != nil {
			return nil, err
		}
		hi, err := d.reader.Float64()
		if err != nil {
			return nil, err
		}
		sf := (hi - lo) / section.ScaledSampleMax
		for i := range samples {
			raw, err := d.reader.Uint16()
			if err != nil {
				return nil, err
			}
			samples[i] = float64(raw)*sf + lo
		}
	default:
		for i := range samples {
			v, err := d.reader.Float64()
			if err != nil {
				return nil, err
			}
			samples[i] = v
		}
	}

	return samples, nil
}
