package converter

import "testing"

func TestNibblizeRoundTrip(t *testing.T) {
	// Every byte value must split into two in-range nibbles that
	// reassemble low-nibble-first.
	var v Voice
	for i := range v {
		v[i] = byte(i * 4) // covers 0x00..0xFC
	}
	v[63] = 0xFF

	packet := NibblizeVoice(v)
	if len(packet) != VoicePacketSize {
		t.Fatalf("packet length = %d, want %d", len(packet), VoicePacketSize)
	}

	for k := 0; k < VoiceSize; k++ {
		lo := packet[2+2*k]
		hi := packet[2+2*k+1]
		if lo > 0x0F || hi > 0x0F {
			t.Errorf("byte %d: nibbles %02X %02X out of range", k, lo, hi)
		}
		if got := hi<<4 | lo; got != v[k] {
			t.Errorf("byte %d: reassembled 0x%02X, want 0x%02X", k, got, v[k])
		}
	}
}

func TestNibblizePacketPrefix(t *testing.T) {
	packet := NibblizeVoice(Voice{})
	if packet[0] != 0x01 || packet[1] != 0x00 {
		t.Errorf("size prefix = %02X %02X, want 01 00", packet[0], packet[1])
	}
}

func TestChecksumIdentity(t *testing.T) {
	tests := []struct {
		name string
		fill byte
	}{
		{"all zero", 0x00},
		{"all 0xFF", 0xFF},
		{"all 0x5A", 0x5A},
		{"all 0x01", 0x01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Voice
			for i := range v {
				v[i] = tt.fill
			}
			packet := NibblizeVoice(v)

			c := packet[VoicePacketSize-1]
			if c > 0x7F {
				t.Errorf("checksum 0x%02X exceeds 7 bits", c)
			}

			var sum byte
			for _, b := range packet[2 : 2+VoiceNibbles] {
				sum += b
			}
			if (sum+c)&0x7F != 0 {
				t.Errorf("checksum 0x%02X does not cancel sum 0x%02X", c, sum)
			}
		})
	}
}

func TestChecksumAllFF(t *testing.T) {
	// 128 nibbles of 0x0F sum to 1920; 1920 mod 256 = 0x80, whose
	// two's complement masked to 7 bits is zero.
	var v Voice
	for i := range v {
		v[i] = 0xFF
	}
	packet := NibblizeVoice(v)
	if c := packet[VoicePacketSize-1]; c != 0x00 {
		t.Errorf("checksum = 0x%02X, want 0x00", c)
	}
}

func TestNibblizeBank(t *testing.T) {
	voices := make([]Voice, VoicesPerBank)
	for i := range voices {
		voices[i][0] = byte(i)
	}

	packets := NibblizeBank(voices)
	if len(packets) != VoicesPerBank {
		t.Fatalf("packet count = %d, want %d", len(packets), VoicesPerBank)
	}
	for i, p := range packets {
		if len(p) != VoicePacketSize {
			t.Errorf("packet %d length = %d, want %d", i, len(p), VoicePacketSize)
		}
		if p[2] != byte(i)&0x0F {
			t.Errorf("packet %d first nibble = 0x%02X, want 0x%02X", i, p[2], byte(i)&0x0F)
		}
	}
}
