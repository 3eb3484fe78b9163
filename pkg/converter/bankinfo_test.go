package converter

import "testing"

func TestBankInfoCleartext(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		bankIndex int
		expected  []byte // first 8 bytes of the cleartext
	}{
		{"short label bank 1", "AB", 1, []byte{'A', 'B', 0x20, 0x20, 0x20, 0x20, 0x20, '1'}},
		{"short label bank 2", "AB", 2, []byte{'A', 'B', 0x20, 0x20, 0x20, 0x20, 0x20, '2'}},
		{"long label truncates to window", "LONGNAME", 1, []byte{'L', 'O', 'N', 'G', 'N', 'A', 'M', '1'}},
		{"lowercase folds to upper", "castle", 1, []byte{'C', 'A', 'S', 'T', 'L', 'E', 0x20, '1'}},
		{"single-bank mode uses all 8", "KQ4", 0, []byte{'K', 'Q', '4', 0x20, 0x20, 0x20, 0x20, 0x20}},
		{"single-bank 8-char label", "LONGNAME", 0, []byte{'L', 'O', 'N', 'G', 'N', 'A', 'M', 'E'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := bankInfoCleartext(tt.label, tt.bankIndex)
			if len(info) != bankInfoSize {
				t.Fatalf("cleartext length = %d, want %d", len(info), bankInfoSize)
			}
			for i, want := range tt.expected {
				if info[i] != want {
					t.Errorf("byte %d = 0x%02X, want 0x%02X", i, info[i], want)
				}
			}
			for i := 8; i < bankInfoSize; i++ {
				if info[i] != 0 {
					t.Errorf("byte %d = 0x%02X, want 0x00", i, info[i])
				}
			}
		})
	}
}

func TestBankInfoRegion(t *testing.T) {
	region := BankInfoRegion("AB", 1)
	if len(region) != BankInfoRegionSize {
		t.Fatalf("region length = %d, want %d", len(region), BankInfoRegionSize)
	}

	// 'A' is 0x41: low nibble 0x01 first, then high nibble 0x04.
	if region[0] != 0x01 || region[1] != 0x04 {
		t.Errorf("nibbles of 'A' = %02X %02X, want 01 04", region[0], region[1])
	}

	var sum byte
	for _, b := range region[:bankInfoSize*2] {
		sum += b
	}
	c := region[BankInfoRegionSize-1]
	if (sum+c)&0x7F != 0 {
		t.Errorf("checksum 0x%02X does not cancel sum 0x%02X", c, sum)
	}
}
