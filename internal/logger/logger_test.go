package logger

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
		isNil bool
	}{
		{input: "debug", want: "debug"},
		{input: "warn", want: "warn"},
		{input: "ERROR", want: "error"},
		{input: "verbose", isNil: true},
		{input: "", want: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lvl := parseLevel(tt.input)
			if tt.isNil {
				if lvl != nil {
					t.Errorf("parseLevel(%q) = %v, want nil", tt.input, *lvl)
				}
				return
			}
			if lvl == nil {
				t.Fatalf("parseLevel(%q) = nil, want %s", tt.input, tt.want)
			}
			if lvl.String() != tt.want {
				t.Errorf("parseLevel(%q) = %s, want %s", tt.input, lvl.String(), tt.want)
			}
		})
	}
}

func TestNopNamed(t *testing.T) {
	log := Nop().Named("render")
	log.Info("discarded", String("k", "v"), Bool("ok", true))
	_ = log.Sync()
}
