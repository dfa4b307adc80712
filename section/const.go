package section

// Stream header constants.
const (
	MagicNumber   = 0x474C4D42 // MagicNumber is "GLMB" read as a big-endian uint32.
	StreamVersion = 0x01       // StreamVersion is the only stream layout version.

	MaxAudioChannels = 8       // MaxAudioChannels bounds the audio channel count.
	MaxAudioBitDepth = 24      // MaxAudioBitDepth bounds bits per audio sample.
	MaxImageBitDepth = 16      // MaxImageBitDepth bounds bits per image sample.
	ImagePlanesGray  = 1       // ImagePlanesGray is the plane count of a grayscale image.
	ImagePlanesRGB   = 3       // ImagePlanesRGB is the plane count of an RGB image.
	MaxBlockSize     = 1 << 24 // MaxBlockSize bounds the block size field.
	DefaultBlockSize = 1024    // DefaultBlockSize is the block size used when none is configured.
	BlockMBits       = 16      // BlockMBits is the width of the per-block m field.
	MaxBlockM        = 1<<BlockMBits - 1
)

// Stream header field widths in bits.
const (
	magicBits     = 32
	versionBits   = 8
	domainBits    = 8
	channelBits   = 8
	rateBits      = 32
	dimensionBits = 32
	bitDepthBits  = 8
	enumBits      = 8
	flagBits      = 1
	blockSizeBits = 32
	countBits     = 32
)

// Envelope header constants.
const (
	EnvelopeMagic      = "GLME" // EnvelopeMagic opens every envelope.
	EnvelopeVersion    = 0x01   // EnvelopeVersion is the only envelope layout version.
	EnvelopeHeaderSize = 20     // EnvelopeHeaderSize is the fixed envelope header size in bytes.
)
