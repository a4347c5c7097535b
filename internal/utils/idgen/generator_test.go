package idgen

import (
	"strings"
	"testing"
)

func TestGenerateSecureID(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		length  int
		wantErr bool
	}{
		{name: "chat ID", prefix: "chat", length: 16},
		{name: "message ID", prefix: "msg", length: 16},
		{name: "short ID", prefix: "test", length: 8},
		{name: "empty prefix", prefix: "", length: 16, wantErr: true},
		{name: "zero length", prefix: "test", length: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSecureID(tt.prefix, tt.length)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GenerateSecureID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !strings.HasPrefix(got, tt.prefix+"_") {
				t.Errorf("GenerateSecureID() = %v, want prefix %v_", got, tt.prefix)
			}
			if len(got) != len(tt.prefix)+1+tt.length {
				t.Errorf("GenerateSecureID() length = %d, want %d", len(got), len(tt.prefix)+1+tt.length)
			}
			for _, char := range got[len(tt.prefix)+1:] {
				if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
					t.Errorf("GenerateSecureID() contains invalid character: %c", char)
				}
			}
		})
	}
}

func TestGenerateSecureID_Uniqueness(t *testing.T) {
	const iterations = 5000
	seen := make(map[string]bool, iterations)

	for i := 0; i < iterations; i++ {
		id, err := GenerateSecureID("test", 16)
		if err != nil {
			t.Fatalf("GenerateSecureID() error = %v", err)
		}
		if seen[id] {
			t.Fatalf("GenerateSecureID() generated duplicate ID: %v", id)
		}
		seen[id] = true
	}
}
