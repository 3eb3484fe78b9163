// Package converter turns Sierra SCI0 FB-01 patch resources into Yamaha
// FB-01 SysEx bank files
package converter

// Shape describes how many voice banks a patch resource carries
type Shape int

const (
	// ShapeSingleBank is a patch carrying one bank of 48 voices
	ShapeSingleBank Shape = iota + 1
	// ShapeDoubleBank is a patch carrying two banks of 48 voices each,
	// separated on disk by the AB CD marker
	ShapeDoubleBank
)

// String returns a human-readable shape name
func (s Shape) String() string {
	switch s {
	case ShapeSingleBank:
		return "single bank (48 voices)"
	case ShapeDoubleBank:
		return "double bank (96 voices)"
	default:
		return "unknown"
	}
}

// Banks returns the number of SysEx bank files the shape produces
func (s Shape) Banks() int {
	if s == ShapeDoubleBank {
		return 2
	}
	return 1
}

// VoiceCount returns the total number of voices the shape carries
func (s Shape) VoiceCount() int {
	return s.Banks() * VoicesPerBank
}

// Voice is one instrument voice as stored in the patch resource. Its
// internal FB-01 parameter layout is opaque to the converter.
type Voice [VoiceSize]byte

// PatchResource is a parsed SCI0 patch file
type PatchResource struct {
	Shape       Shape
	TitleLength int
	Title       []byte  // opaque; never copied into the output
	Voices      []Voice // 48 or 96 entries, in file order
}

// Conversion holds the SysEx bank streams produced from one patch resource.
// BankB is nil for single-bank patches.
type Conversion struct {
	Shape Shape
	BankA []byte
	BankB []byte
}

// Banks returns the produced streams in order (one or two entries)
func (c *Conversion) Banks() [][]byte {
	if c.Shape == ShapeDoubleBank {
		return [][]byte{c.BankA, c.BankB}
	}
	return [][]byte{c.BankA}
}
