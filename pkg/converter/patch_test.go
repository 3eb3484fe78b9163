package converter

import (
	"errors"
	"testing"
)

// makePatch builds a syntactically valid patch resource with every voice
// byte set to fill
func makePatch(shape Shape, titleLen int, fill byte) []byte {
	size := singleBankFileSize + titleLen
	if shape == ShapeDoubleBank {
		size = doubleBankFileSize + titleLen
	}
	data := make([]byte, size)
	data[0] = PatchMagic
	data[1] = byte(titleLen)
	for i := patchHeaderSize + titleLen; i < len(data); i++ {
		data[i] = fill
	}
	if shape == ShapeDoubleBank {
		sep := patchHeaderSize + titleLen + bankDataSize
		data[sep] = bankSeparator[0]
		data[sep+1] = bankSeparator[1]
	}
	return data
}

func TestIdentify(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected Shape
		wantErr  error
	}{
		{"single bank, no title", makePatch(ShapeSingleBank, 0, 0), ShapeSingleBank, nil},
		{"single bank, titled", makePatch(ShapeSingleBank, 17, 0), ShapeSingleBank, nil},
		{"double bank, no title", makePatch(ShapeDoubleBank, 0, 0), ShapeDoubleBank, nil},
		{"double bank, titled", makePatch(ShapeDoubleBank, 255, 0), ShapeDoubleBank, nil},
		{"empty", []byte{}, 0, ErrTruncatedInput},
		{"magic only", []byte{PatchMagic}, 0, ErrTruncatedInput},
		{"bad magic", append([]byte{0x00}, makePatch(ShapeSingleBank, 0, 0)[1:]...), 0, ErrInvalidMagic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := Identify(tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Identify() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Identify() error = %v", err)
			}
			if shape != tt.expected {
				t.Errorf("Identify() = %v, want %v", shape, tt.expected)
			}
		})
	}
}

func TestIdentifyUnexpectedLength(t *testing.T) {
	// One byte short of a valid single-bank file for its title length.
	data := makePatch(ShapeSingleBank, 4, 0)
	data = data[:len(data)-1]

	_, err := Identify(data)
	var lenErr *UnexpectedLengthError
	if !errors.As(err, &lenErr) {
		t.Fatalf("Identify() error = %v, want *UnexpectedLengthError", err)
	}
	if lenErr.Actual != len(data) || lenErr.TitleLength != 4 {
		t.Errorf("error fields = {%d %d}, want {%d 4}", lenErr.Actual, lenErr.TitleLength, len(data))
	}
}

func TestExtractVoicesSingle(t *testing.T) {
	data := makePatch(ShapeSingleBank, 3, 0)
	// Tag the first byte of each voice with its index.
	for i := 0; i < VoicesPerBank; i++ {
		data[patchHeaderSize+3+i*VoiceSize] = byte(i)
	}

	voices, err := ExtractVoices(data, ShapeSingleBank)
	if err != nil {
		t.Fatalf("ExtractVoices() error = %v", err)
	}
	if len(voices) != VoicesPerBank {
		t.Fatalf("voice count = %d, want %d", len(voices), VoicesPerBank)
	}
	for i, v := range voices {
		if v[0] != byte(i) {
			t.Errorf("voice %d starts with 0x%02X, want 0x%02X", i, v[0], byte(i))
		}
	}
}

func TestExtractVoicesDouble(t *testing.T) {
	data := makePatch(ShapeDoubleBank, 0, 0)
	// Mark the first voice of each bank.
	data[patchHeaderSize] = 0xAA
	data[patchHeaderSize+bankDataSize+separatorSize] = 0xBB

	voices, err := ExtractVoices(data, ShapeDoubleBank)
	if err != nil {
		t.Fatalf("ExtractVoices() error = %v", err)
	}
	if len(voices) != 2*VoicesPerBank {
		t.Fatalf("voice count = %d, want %d", len(voices), 2*VoicesPerBank)
	}
	if voices[0][0] != 0xAA {
		t.Errorf("bank A voice 0 starts with 0x%02X, want 0xAA", voices[0][0])
	}
	if voices[VoicesPerBank][0] != 0xBB {
		t.Errorf("bank B voice 0 starts with 0x%02X, want 0xBB", voices[VoicesPerBank][0])
	}
}

func TestExtractVoicesSeparator(t *testing.T) {
	// Both separator bytes must match; a half match is invalid.
	tests := []struct {
		name string
		sep  [2]byte
		ok   bool
	}{
		{"AB CD", [2]byte{0xAB, 0xCD}, true},
		{"00 00", [2]byte{0x00, 0x00}, false},
		{"AB 00", [2]byte{0xAB, 0x00}, false},
		{"00 CD", [2]byte{0x00, 0xCD}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := makePatch(ShapeDoubleBank, 0, 0)
			sep := patchHeaderSize + bankDataSize
			data[sep] = tt.sep[0]
			data[sep+1] = tt.sep[1]

			_, err := ExtractVoices(data, ShapeDoubleBank)
			if tt.ok && err != nil {
				t.Fatalf("ExtractVoices() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrMissingBankSeparator) {
				t.Fatalf("ExtractVoices() error = %v, want ErrMissingBankSeparator", err)
			}
		})
	}
}

func TestParsePatchTitle(t *testing.T) {
	data := makePatch(ShapeSingleBank, 5, 0)
	copy(data[patchHeaderSize:], "title")

	patch, err := ParsePatch(data)
	if err != nil {
		t.Fatalf("ParsePatch() error = %v", err)
	}
	if patch.TitleLength != 5 || string(patch.Title) != "title" {
		t.Errorf("title = %q (length %d), want %q", patch.Title, patch.TitleLength, "title")
	}
	if patch.Shape != ShapeSingleBank {
		t.Errorf("shape = %v, want %v", patch.Shape, ShapeSingleBank)
	}
}
