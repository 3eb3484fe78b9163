package converter

import "strings"

// Bank-info packet layout constants
const (
	// bankInfoSize is the cleartext bank-info packet: label plus zero padding
	bankInfoSize = 32

	// BankInfoRegionSize is the on-wire form: 64 nibble-bytes + checksum
	BankInfoRegionSize = bankInfoSize*2 + 1
)

// bankInfoCleartext builds the 32-byte bank-info packet. The label is
// uppercased ASCII, right-padded with spaces. With bankIndex 1 or 2 the
// label window is 7 bytes and byte 7 carries the ASCII bank digit; with
// bankIndex 0 (single-bank mode) the window is the full 8 bytes.
// The FB-01 display is uppercase-only, so lowercase labels are folded.
func bankInfoCleartext(label string, bankIndex int) []byte {
	window := 8
	if bankIndex != 0 {
		window = 7
	}
	name := strings.ToUpper(label)
	if len(name) > window {
		name = name[:window]
	}

	info := make([]byte, bankInfoSize)
	copy(info, name)
	for i := len(name); i < window; i++ {
		info[i] = 0x20
	}
	if bankIndex != 0 {
		info[7] = byte('0' + bankIndex)
	}
	return info
}

// BankInfoRegion builds the 65-byte on-wire bank-info region for one bank:
// the nibblized 32-byte cleartext followed by its checksum. bankIndex is
// 1 or 2 in double-bank mode and 0 in single-bank mode.
func BankInfoRegion(label string, bankIndex int) []byte {
	region := make([]byte, 0, BankInfoRegionSize)
	region = nibblize(region, bankInfoCleartext(label, bankIndex))
	region = append(region, checksum7(region))
	return region
}
