// Package format defines the small enums used to tag how a block or chunk's
// timestamp and value streams are encoded and optionally compressed.
package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeRaw      EncodingType = 0x1 // TypeRaw stores values with no compression.
	TypeDeltaRLE EncodingType = 0x2 // TypeDeltaRLE is the delta+run-length integer codec (package rle).
	TypeFCM      EncodingType = 0x3 // TypeFCM is the finite-context predictive double codec (package fcm).

	CompressionNone CompressionType = 0x1 // CompressionNone applies no secondary compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd applies Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 applies S2 (Snappy-compatible) compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 applies LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeDeltaRLE:
		return "DeltaRLE"
	case TypeFCM:
		return "FCM"
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
