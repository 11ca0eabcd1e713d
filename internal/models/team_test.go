package models

import "testing"

func TestNewInviteCodeFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := NewInviteCode()
		if err != nil {
			t.Fatalf("generate invite code failed: %v", err)
		}
		if len(code) != InviteCodeLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), InviteCodeLength)
		}
		for j := 0; j < len(code); j++ {
			b := code[j]
			if !(b >= 'A' && b <= 'Z') && !(b >= '0' && b <= '9') {
				t.Fatalf("code %q contains byte %q outside A-Z0-9", code, b)
			}
		}
	}
}
