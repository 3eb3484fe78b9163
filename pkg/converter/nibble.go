package converter

// Voice packet layout constants
const (
	// VoiceNibbles is the on-wire size of one voice: two nibble-bytes per
	// source byte
	VoiceNibbles = VoiceSize * 2

	// VoicePacketSize is size prefix (2) + nibbles (128) + checksum (1)
	VoicePacketSize = 2 + VoiceNibbles + 1
)

// nibblize appends the low-nibble-first expansion of src to dst. The FB-01
// reassembles byte k from stream bytes 2k and 2k+1 as
// stream[2k+1]<<4 | stream[2k].
func nibblize(dst, src []byte) []byte {
	for _, b := range src {
		dst = append(dst, b&0x0F, (b>>4)&0x0F)
	}
	return dst
}

// checksum7 returns the two's complement of the 8-bit wrapping sum of data,
// masked to 7 bits, so that (sum(data)+checksum)&0x7F == 0
func checksum7(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return (^sum + 1) & 0x7F
}

// NibblizeVoice encodes one voice as a 131-byte FB-01 voice packet:
// the 01 00 size prefix (128 data bytes), 128 nibble-bytes, and a checksum
func NibblizeVoice(v Voice) []byte {
	packet := make([]byte, 0, VoicePacketSize)
	packet = append(packet, 0x01, 0x00)
	packet = nibblize(packet, v[:])
	packet = append(packet, checksum7(packet[2:]))
	return packet
}

// NibblizeBank encodes each voice of one bank in order
func NibblizeBank(voices []Voice) [][]byte {
	packets := make([][]byte, len(voices))
	for i, v := range voices {
		packets[i] = NibblizeVoice(v)
	}
	return packets
}
