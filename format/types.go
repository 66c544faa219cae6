// Package format defines the identifiers of the symbol encoding schemes.
package format

// EncoderType selects how symbols are mapped to byte codes.
type EncoderType uint8

const (
	TypeIndex EncoderType = 0x1 // TypeIndex assigns minimal-width codes sized to the alphabet's declared maximum.
	TypeByte  EncoderType = 0x2 // TypeByte assigns one-byte codes and supports at most 256 symbols.
)

func (e EncoderType) String() string {
	switch e {
	case TypeIndex:
		return "Index"
	case TypeByte:
		return "Byte"
	default:
		return "Unknown"
	}
}

// IsValid reports whether e names a known encoder type.
func (e EncoderType) IsValid() bool {
	return e == TypeIndex || e == TypeByte
}
