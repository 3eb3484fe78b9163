package converter

import "fmt"

// SysEx constants
const (
	SysExStart = 0xF0
	SysExEnd   = 0xF7

	// YamahaID is Yamaha's MIDI manufacturer ID
	YamahaID = 0x43

	// BankStreamSize is the exact length of one FB-01 bank dump:
	// 7-byte header + 2-byte info size + 65-byte info region +
	// 48 voice packets + end-of-exclusive
	BankStreamSize = 7 + 2 + BankInfoRegionSize + VoicesPerBank*VoicePacketSize + 1 // 6363
)

// bankHeader returns the FB-01 "send bank" SysEx start sequence. Byte 6
// selects the destination bank: 0x00 for bank 1, 0x01 for bank 2.
func bankHeader(bankIndex int) []byte {
	return []byte{SysExStart, YamahaID, 0x75, 0x00, 0x00, 0x00, byte(bankIndex - 1)}
}

// BuildBankStream assembles one complete FB-01 bank dump from a bank-info
// region and 48 voice packets. bankIndex is 1 or 2. Packet sizes are
// re-checked so a malformed intermediate can never reach the output.
func BuildBankStream(bankIndex int, infoRegion []byte, packets [][]byte) ([]byte, error) {
	if len(infoRegion) != BankInfoRegionSize {
		return nil, &InternalShapeError{Stage: "bank-info region", Want: BankInfoRegionSize, Got: len(infoRegion)}
	}
	if len(packets) != VoicesPerBank {
		return nil, &InternalShapeError{Stage: "voice packet list", Want: VoicesPerBank, Got: len(packets)}
	}

	stream := make([]byte, 0, BankStreamSize)
	stream = append(stream, bankHeader(bankIndex)...)
	stream = append(stream, 0x00, 0x40) // bank-info packet size = 64
	stream = append(stream, infoRegion...)
	for _, p := range packets {
		if len(p) != VoicePacketSize {
			return nil, &InternalShapeError{Stage: "voice packet", Want: VoicePacketSize, Got: len(p)}
		}
		stream = append(stream, p...)
	}
	stream = append(stream, SysExEnd)

	if len(stream) != BankStreamSize {
		return nil, &InternalShapeError{Stage: "bank stream", Want: BankStreamSize, Got: len(stream)}
	}
	return stream, nil
}

// ValidateBankStream checks the fixed framing of a produced bank dump:
// length, SysEx start sequence, info packet size, and end-of-exclusive
func ValidateBankStream(data []byte) error {
	if len(data) != BankStreamSize {
		return fmt.Errorf("bank stream is %d bytes, want %d", len(data), BankStreamSize)
	}
	if data[0] != SysExStart {
		return fmt.Errorf("bank stream starts with 0x%02X, want 0x%02X", data[0], SysExStart)
	}
	if data[1] != YamahaID || data[2] != 0x75 {
		return fmt.Errorf("bank stream is not an FB-01 message (bytes 1-2 are %02X %02X)", data[1], data[2])
	}
	if data[7] != 0x00 || data[8] != 0x40 {
		return fmt.Errorf("bank-info size field is %02X %02X, want 00 40", data[7], data[8])
	}
	if data[len(data)-1] != SysExEnd {
		return fmt.Errorf("bank stream ends with 0x%02X, want 0x%02X", data[len(data)-1], SysExEnd)
	}
	return nil
}
