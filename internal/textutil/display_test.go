package textutil

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"modification", "Modification"},
		{"image_path", "Image Path"},
		{"run-id", "Run Id"},
		{"  created_at ", "Created At"},
		{"FINGERPRINT", "Fingerprint"},
		{"", ""},
		{"__", ""},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.in); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayNames(t *testing.T) {
	got := DisplayNames("key", "self_name")
	if len(got) != 2 || got[0] != "Key" || got[1] != "Self Name" {
		t.Fatalf("unexpected %v", got)
	}
}

func TestTernary(t *testing.T) {
	if Ternary(true, "yes", "no") != "yes" {
		t.Fatal("expected yes")
	}
	if Ternary(false, 1, 2) != 2 {
		t.Fatal("expected 2")
	}
}
