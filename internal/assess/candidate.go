package assess

import (
	log "github.com/sirupsen/logrus"
)

// Candidate is one parsed and scored alignment between a locus's
// assembled sequence and a reference isolate.
type Candidate struct {
	// Isolate is the reference isolate's label, from the filename
	Isolate string

	// Score reported by the aligner
	Score float64

	// PctIdentity reported by the aligner (0-100)
	PctIdentity float64

	// Coverage is the ungapped reference length over the ungapped
	// assembled length
	Coverage float64

	// Length of the assembled sequence without gaps
	Length int

	// RefLength is the count of reference bases spanned by the
	// assembled alignment
	RefLength int

	// GapFreeID is the identity over reference bases only (0-100).
	// Only computed for scaffold assemblies
	GapFreeID float64

	// Path of the alignment report this candidate came from
	Path string
}

// buildCandidates turns already-read reports into scored candidates. It
// is a pure reduction over the report contents: a report that fails to
// parse drops only itself, the rest of the locus continues.
func buildCandidates(reports []report, kind AssemblyKind) []Candidate {
	var candidates []Candidate
	for _, r := range reports {
		aln, err := parseReport(r.data)
		if err != nil {
			log.Warnf("skipping alignment report %s: %v", r.path, err)
			continue
		}

		candidate := Candidate{
			Isolate:     isolateLabel(r.name),
			Score:       aln.score,
			PctIdentity: aln.pctIdentity,
			Coverage:    coverageRatio(aln.refSeq, aln.asmSeq),
			Length:      ungappedLen(aln.asmSeq),
			RefLength:   refCoveredLen(aln.refSeq, aln.asmSeq),
			Path:        r.path,
		}
		if kind == Scaffold {
			candidate.GapFreeID = gapFreeIdentity(aln.refSeq, aln.asmSeq)
		}

		candidates = append(candidates, candidate)
	}

	return candidates
}
