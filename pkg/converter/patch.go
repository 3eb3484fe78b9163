package converter

import (
	"fmt"
	"os"
)

// SCI0 patch resource layout constants
const (
	// PatchMagic is the SCI patch resource identifier in byte 0
	PatchMagic = 0x89

	// VoiceSize is the on-disk size of one instrument voice
	VoiceSize = 64

	// VoicesPerBank is the number of voices in one FB-01 bank
	VoicesPerBank = 48

	// patchHeaderSize covers the magic byte and the title-length byte
	patchHeaderSize = 2

	bankDataSize       = VoicesPerBank * VoiceSize // 3072
	separatorSize      = 2
	singleBankFileSize = patchHeaderSize + bankDataSize                                // 3074, before title
	doubleBankFileSize = patchHeaderSize + bankDataSize + separatorSize + bankDataSize // 6148, before title
)

// bankSeparator sits between bank A and bank B in double-bank files.
// Both bytes must match; accepting a half match was a bug in older
// conversion tools.
var bankSeparator = [2]byte{0xAB, 0xCD}

// Identify checks the magic byte and title-length prefix and classifies the
// input as a single- or double-bank patch from its total length
func Identify(data []byte) (Shape, error) {
	if len(data) < patchHeaderSize {
		return 0, ErrTruncatedInput
	}
	if data[0] != PatchMagic {
		return 0, ErrInvalidMagic
	}
	titleLen := int(data[1])
	switch len(data) {
	case singleBankFileSize + titleLen:
		return ShapeSingleBank, nil
	case doubleBankFileSize + titleLen:
		return ShapeDoubleBank, nil
	default:
		return 0, &UnexpectedLengthError{Actual: len(data), TitleLength: titleLen}
	}
}

// ExtractVoices reads the 48 or 96 voice blocks that follow the title,
// enforcing the AB CD separator between banks in double-bank patches
func ExtractVoices(data []byte, shape Shape) ([]Voice, error) {
	if len(data) < patchHeaderSize {
		return nil, ErrTruncatedInput
	}
	titleLen := int(data[1])
	pos := patchHeaderSize + titleLen

	voices := make([]Voice, 0, shape.VoiceCount())
	for i := 0; i < shape.VoiceCount(); i++ {
		// Voice 49 is the first voice of bank B; the separator sits
		// directly before it.
		if i == VoicesPerBank && shape == ShapeDoubleBank {
			if pos+separatorSize > len(data) {
				return nil, ErrTruncatedInput
			}
			if data[pos] != bankSeparator[0] || data[pos+1] != bankSeparator[1] {
				return nil, ErrMissingBankSeparator
			}
			pos += separatorSize
		}
		if pos+VoiceSize > len(data) {
			return nil, ErrTruncatedInput
		}
		var v Voice
		copy(v[:], data[pos:pos+VoiceSize])
		voices = append(voices, v)
		pos += VoiceSize
	}
	return voices, nil
}

// ParsePatch validates and parses a complete SCI0 patch resource
func ParsePatch(data []byte) (*PatchResource, error) {
	shape, err := Identify(data)
	if err != nil {
		return nil, err
	}
	titleLen := int(data[1])
	voices, err := ExtractVoices(data, shape)
	if err != nil {
		return nil, err
	}
	title := make([]byte, titleLen)
	copy(title, data[patchHeaderSize:patchHeaderSize+titleLen])
	return &PatchResource{
		Shape:       shape,
		TitleLength: titleLen,
		Title:       title,
		Voices:      voices,
	}, nil
}

// ParsePatchFile reads and parses a patch resource from disk
func ParsePatchFile(filename string) (*PatchResource, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read patch file: %w", err)
	}
	return ParsePatch(data)
}
