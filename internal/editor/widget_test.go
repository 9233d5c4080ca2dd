package editor

import "testing"

func TestInsertRunesLimit(t *testing.T) {
	tests := []struct {
		name  string
		buf   string
		in    string
		limit int
		want  string
	}{
		{"append", "coo", "l", 50, "cool"},
		{"no limit", "", "anything goes", 0, "anything goes"},
		{"stops below limit", "abc", "def", 5, "abcd"},
		{"already full", "abcd", "e", 5, "abcd"},
		{"control chars skipped", "a", "b\tc\nd", 50, "abcd"},
		{"multibyte counts bytes", "", "µµµ", 5, "µµ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(insertRunes([]rune(tt.buf), []rune(tt.in), tt.limit))
			if got != tt.want {
				t.Fatalf("insertRunes=%q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFloatOr(t *testing.T) {
	if got := parseFloatOr("2.5", 1); got != 2.5 {
		t.Fatalf("got %v, want 2.5", got)
	}
	if got := parseFloatOr(" -3 ", 1); got != -3 {
		t.Fatalf("got %v, want -3", got)
	}
	if got := parseFloatOr("not a number", 1.5); got != 1.5 {
		t.Fatalf("got %v, want prior value 1.5", got)
	}
	if got := parseFloatOr("", 4); got != 4 {
		t.Fatalf("got %v, want prior value 4", got)
	}
}

func TestParseIntOr(t *testing.T) {
	if got := parseIntOr("128", 100); got != 128 {
		t.Fatalf("got %v, want 128", got)
	}
	if got := parseIntOr("12.5", 100); got != 100 {
		t.Fatalf("got %v, want prior value 100", got)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{-1.5, "-1.5"},
		{0.25, "0.25"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Fatalf("formatFloat(%v)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClipText(t *testing.T) {
	if got := clipText("short", 200); got != "short" {
		t.Fatalf("got %q, want unchanged", got)
	}
	long := "0123456789012345"
	got := clipText(long, 48) // (48-8)/8 = 5 chars
	if got != "01234" {
		t.Fatalf("got %q, want %q", got, "01234")
	}
}

func TestPendingEditClaim(t *testing.T) {
	u := &uiState{}
	u.focus = "colormap"
	u.edit = []rune("plasma")

	u.blur()
	if u.focus != "" {
		t.Fatalf("focus=%q, want cleared", u.focus)
	}

	if _, ok := u.claimPending("other"); ok {
		t.Fatal("claim for a different field succeeded")
	}
	text, ok := u.claimPending("colormap")
	if !ok || text != "plasma" {
		t.Fatalf("claim=%q,%v, want %q,true", text, ok, "plasma")
	}
	if _, ok := u.claimPending("colormap"); ok {
		t.Fatal("second claim succeeded, want one-shot")
	}
}

func TestUnclaimedPendingDropped(t *testing.T) {
	u := &uiState{}
	u.focus = "rho0.expr"
	u.edit = []rune("x*y")
	u.blur()

	// Frame after the blur: owner collapsed, nobody claims.
	u.pendingNew = false
	u.endFrame()

	if u.pendingID != "" {
		t.Fatalf("pendingID=%q, want dropped", u.pendingID)
	}
}
