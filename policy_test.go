package wavstrip

import "testing"

func TestDefaultPolicy(t *testing.T) {
	tests := []struct {
		id   [4]byte
		want Disposition
	}{
		{CIDFmt, ParseFormat},
		{CIDData, ParseDataAndStop},
		{CIDList, SkimSubfield},
		{CIDFact, Reject},
		{[4]byte{'J', 'U', 'N', 'K'}, SkipWithPadding},
		{[4]byte{'b', 'e', 'x', 't'}, SkipWithPadding},
		{[4]byte{'l', 'i', 's', 't'}, SkipWithPadding},
	}

	p := DefaultPolicy()

	for _, tt := range tests {
		t.Run(string(tt.id[:]), func(t *testing.T) {
			if got := p.Lookup(tt.id); got != tt.want {
				t.Fatalf("Lookup(%q)=%s, want %s", tt.id[:], got, tt.want)
			}

			var nilPolicy *Policy
			if got := nilPolicy.Lookup(tt.id); got != tt.want {
				t.Fatalf("nil Lookup(%q)=%s, want %s", tt.id[:], got, tt.want)
			}
		})
	}
}

func TestPolicyRegister(t *testing.T) {
	id := [4]byte{'i', 'X', 'M', 'L'}

	p := DefaultPolicy()
	p.Register(id, Reject)
	p.Register(CIDList, SkipWithPadding)

	if got := p.Lookup(id); got != Reject {
		t.Fatalf("registered entry: got %s", got)
	}

	if got := p.Lookup(CIDList); got != SkipWithPadding {
		t.Fatalf("replaced entry: got %s", got)
	}

	if got := DefaultPolicy().Lookup(CIDList); got != SkimSubfield {
		t.Fatalf("default policy modified by Register: got %s", got)
	}

	empty := &Policy{}
	empty.Register(id, ParseDataAndStop)

	if got := empty.Lookup(id); got != ParseDataAndStop {
		t.Fatalf("zero policy register: got %s", got)
	}

	if got := empty.Lookup(CIDFmt); got != SkipWithPadding {
		t.Fatalf("zero policy has no defaults: got %s", got)
	}
}

func TestDispositionString(t *testing.T) {
	tests := map[Disposition]string{
		SkipWithPadding:  "skip",
		ParseFormat:      "format",
		ParseDataAndStop: "data",
		SkimSubfield:     "skim",
		Reject:           "reject",
		Disposition(42):  "Disposition(42)",
	}

	for d, want := range tests {
		if got := d.String(); got != want {
			t.Fatalf("String()=%q, want %q", got, want)
		}
	}
}
