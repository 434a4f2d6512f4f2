package assess

import "fmt"

// AssemblyKind is the upstream assembly strategy that produced the
// sequences being assessed. It governs which alignment files are scanned
// for a locus and which metric picks the best hit.
type AssemblyKind int

const (
	// Contig assemblies align multiple candidate sequences per locus.
	// The best hit is the one with the highest reported identity.
	Contig AssemblyKind = iota

	// Scaffold assemblies align one merged scaffold per locus. Because
	// scaffolding can introduce internal gaps and repeat-inflated
	// regions, the best hit is picked by gap-free identity instead.
	Scaffold
)

// ParseKind maps the "type" setting to an AssemblyKind.
func ParseKind(s string) (AssemblyKind, error) {
	switch s {
	case "contig", "Contig":
		return Contig, nil
	case "scaffold", "Scaffold":
		return Scaffold, nil
	}

	return Contig, fmt.Errorf("unknown assembly type %q, expected 'contig' or 'scaffold'", s)
}

func (k AssemblyKind) String() string {
	if k == Scaffold {
		return "scaffold"
	}
	return "contig"
}
