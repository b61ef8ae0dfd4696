package section

const (
	// MagicNumber identifies a catman AP binary file. It occupies the first
	// two bytes of the stream.
	MagicNumber uint16 = 5012

	// ExtHeaderSize is the size of the fixed extended channel header layout in
	// bytes. Files written by other catman revisions may declare a different
	// size; see ExtHeader.Parse for the fallback.
	ExtHeaderSize = 148

	// FileHeaderMinSize is the smallest possible file header: magic, data
	// offset, empty comment and channel count.
	FileHeaderMinSize = 2 + 4 + 2 + 2

	// ScaledSampleMax is the divisor for 2-byte scaled samples: a raw uint16
	// maps linearly from [0, 32767] onto the channel's [min, max] range.
	ScaledSampleMax = 32767

	serNoLen      = 32
	physUnitLen   = 8
	nativeUnitLen = 8
	extPadLen     = 3
	extReserveLen = 7
)
