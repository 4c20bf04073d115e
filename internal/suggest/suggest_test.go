package suggest

import "testing"

var mainCommands = []string{"contacts", "notes", "help", "exit"}

func TestCommand_CatchesTypos(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"contatcs", "contacts"},
		{"contact", "contacts"},
		{"notse", "notes"},
		{"hlep", "help"},
		{"exot", "exit"},
		{"CONTACTS", "contacts"}, // case-folded before scoring
	}

	for _, test := range tests {
		got, ok := Command(test.token, mainCommands, 0)
		if !ok {
			t.Errorf("Command(%q) found nothing, want %q", test.token, test.want)
			continue
		}
		if got != test.want {
			t.Errorf("Command(%q) = %q, want %q", test.token, got, test.want)
		}
	}
}

func TestCommand_RejectsDistantTokens(t *testing.T) {
	for _, token := range []string{"xyzzy", "qqqqqqqq", "birthday"} {
		if got, ok := Command(token, mainCommands, 0); ok {
			t.Errorf("Command(%q) = %q, want no suggestion", token, got)
		}
	}
}

func TestCommand_EmptyToken(t *testing.T) {
	if got, ok := Command("   ", mainCommands, 0); ok {
		t.Errorf("Command(blank) = %q, want no suggestion", got)
	}
}

func TestCommand_ThresholdOverride(t *testing.T) {
	// A strict threshold rejects what the default accepts.
	if _, ok := Command("contatcs", mainCommands, 0.999); ok {
		t.Error("near-match should fail a 0.999 threshold")
	}
	if _, ok := Command("contacts", mainCommands, 0.999); !ok {
		t.Error("exact token should clear any threshold")
	}
}
