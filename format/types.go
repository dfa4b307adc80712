package format

type (
	Domain           uint8
	PredictorType    uint8
	SignMapping      uint8
	ChannelTransform uint8
	CompressionType  uint8
)

const (
	DomainAudio Domain = 0x1 // DomainAudio represents one-dimensional sample streams.
	DomainImage Domain = 0x2 // DomainImage represents raster-scanned pixel planes.
)

const (
	PredictorNone       PredictorType = 0x0 // PredictorNone predicts zero for every element.
	PredictorLinear1    PredictorType = 0x1 // PredictorLinear1 predicts x[n-1].
	PredictorLinear2    PredictorType = 0x2 // PredictorLinear2 predicts 2x[n-1] - x[n-2].
	PredictorLinear3    PredictorType = 0x3 // PredictorLinear3 predicts 3x[n-1] - 3x[n-2] + x[n-3].
	PredictorLeft       PredictorType = 0x4 // PredictorLeft predicts the pixel to the left.
	PredictorTop        PredictorType = 0x5 // PredictorTop predicts the pixel above.
	PredictorAverage    PredictorType = 0x6 // PredictorAverage predicts floor((left+top)/2).
	PredictorPaeth      PredictorType = 0x7 // PredictorPaeth is the PNG Paeth predictor.
	PredictorMedianEdge PredictorType = 0x8 // PredictorMedianEdge is the JPEG-LS median edge detector.
	PredictorAdaptive   PredictorType = 0x9 // PredictorAdaptive selects a base predictor per block or row.
)

const (
	SignAndMagnitude SignMapping = 0x1 // SignAndMagnitude writes a sign bit before the magnitude.
	OddEvenMapping   SignMapping = 0x2 // OddEvenMapping folds signed values with zig-zag mapping.
)

const (
	TransformIndependent ChannelTransform = 0x0 // TransformIndependent codes every channel as-is.
	TransformMidSide     ChannelTransform = 0x1 // TransformMidSide codes (mid, side) of a stereo pair.
	TransformLeftSide    ChannelTransform = 0x2 // TransformLeftSide codes (left, side) of a stereo pair.
	TransformRightSide   ChannelTransform = 0x3 // TransformRightSide codes (side, right) of a stereo pair.
	TransformRCT         ChannelTransform = 0x4 // TransformRCT applies the reversible color transform to RGB planes.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (d Domain) String() string {
	switch d {
	case DomainAudio:
		return "Audio"
	case DomainImage:
		return "Image"
	default:
		return "Unknown"
	}
}

func (p PredictorType) String() string {
	switch p {
	case PredictorNone:
		return "None"
	case PredictorLinear1:
		return "Linear1"
	case PredictorLinear2:
		return "Linear2"
	case PredictorLinear3:
		return "Linear3"
	case PredictorLeft:
		return "Left"
	case PredictorTop:
		return "Top"
	case PredictorAverage:
		return "Average"
	case PredictorPaeth:
		return "Paeth"
	case PredictorMedianEdge:
		return "MedianEdge"
	case PredictorAdaptive:
		return "Adaptive"
	default:
		return "Unknown"
	}
}

// ValidFor reports whether the predictor can be used for the given domain.
func (p PredictorType) ValidFor(d Domain) bool {
	switch d {
	case DomainAudio:
		switch p { //nolint: exhaustive
		case PredictorNone, PredictorLinear1, PredictorLinear2, PredictorLinear3, PredictorAdaptive:
			return true
		default:
			return false
		}
	case DomainImage:
		switch p { //nolint: exhaustive
		case PredictorNone, PredictorLeft, PredictorTop, PredictorAverage,
			PredictorPaeth, PredictorMedianEdge, PredictorAdaptive:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

func (s SignMapping) String() string {
	switch s {
	case SignAndMagnitude:
		return "SignAndMagnitude"
	case OddEvenMapping:
		return "OddEven"
	default:
		return "Unknown"
	}
}

func (t ChannelTransform) String() string {
	switch t {
	case TransformIndependent:
		return "Independent"
	case TransformMidSide:
		return "MidSide"
	case TransformLeftSide:
		return "LeftSide"
	case TransformRightSide:
		return "RightSide"
	case TransformRCT:
		return "RCT"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
