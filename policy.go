package wavstrip

import "fmt"

// Disposition is what the Reader does with a chunk of a given ID.
type Disposition int

const (
	// SkipWithPadding drops the chunk by skipping its payload and pad byte.
	SkipWithPadding Disposition = iota
	// ParseFormat parses the chunk as the PCM fmt chunk and keeps it.
	ParseFormat
	// ParseDataAndStop keeps the chunk as sample data and ends the scan.
	ParseDataAndStop
	// SkimSubfield reads and drops the 4 byte list type and nothing else.
	SkimSubfield
	// Reject fails the scan with ErrUnsupportedCodec.
	Reject
)

func (d Disposition) String() string {
	switch d {
	case SkipWithPadding:
		return "skip"
	case ParseFormat:
		return "format"
	case ParseDataAndStop:
		return "data"
	case SkimSubfield:
		return "skim"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("Disposition(%d)", int(d))
	}
}

// Policy resolves chunk IDs to dispositions. IDs without an entry are
// skipped.
type Policy struct {
	entries map[[4]byte]Disposition
}

// DefaultPolicy returns the table used by NewReader.
//
// LIST chunks only get their list type consumed; the rest of the payload is
// then scanned as if it were chunk headers. Files written by existing
// tooling depend on that cursor behaviour, so it is kept. Register
// SkipWithPadding for CIDList to drop LIST chunks whole.
func DefaultPolicy() *Policy {
	return &Policy{
		entries: map[[4]byte]Disposition{
			CIDFmt:  ParseFormat,
			CIDData: ParseDataAndStop,
			CIDList: SkimSubfield,
			CIDFact: Reject,
		},
	}
}

// Register adds or replaces the disposition for a chunk ID.
func (p *Policy) Register(id [4]byte, d Disposition) {
	if p == nil {
		return
	}

	if p.entries == nil {
		p.entries = make(map[[4]byte]Disposition)
	}

	p.entries[id] = d
}

// Lookup returns the disposition for a chunk ID. A nil Policy behaves like
// DefaultPolicy.
func (p *Policy) Lookup(id [4]byte) Disposition {
	if p == nil {
		return defaultPolicy.Lookup(id)
	}

	return p.entries[id]
}

var defaultPolicy = DefaultPolicy()
