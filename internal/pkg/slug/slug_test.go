package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple name", "Jane Doe", "jane-doe"},
		{"punctuation collapses", "MAGIC LAS VEGAS!!", "magic-las-vegas"},
		{"surrounding separators trimmed", "  A & B  ", "a-b"},
		{"digits kept", "Web3 Meetup 2026", "web3-meetup-2026"},
		{"consecutive separators", "one---two___three", "one-two-three"},
		{"only separators", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Jane Doe", "MAGIC LAS VEGAS!!", "  A & B  ", "already-a-slug"}
	for _, input := range inputs {
		once := Make(input)
		if twice := Make(once); twice != once {
			t.Errorf("Make(Make(%q)) = %q, want %q", input, twice, once)
		}
	}
}

func TestForJob(t *testing.T) {
	got := ForJob("Backend Engineer", "ACME Corp.")
	want := "backend-engineer-acme-corp"
	if got != want {
		t.Errorf("ForJob() = %q, want %q", got, want)
	}
}
