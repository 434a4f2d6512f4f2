package assess

// criterion is the metric that ranks a locus's candidates. Contig
// assemblies rank by the aligner's reported identity. Scaffold assemblies
// rank by gap-free identity: once scaffolding can introduce internal gaps
// or repeat-inflated regions, the reported identity undersells hits whose
// reference bases all match.
func criterion(c Candidate, kind AssemblyKind) float64 {
	if kind == Scaffold {
		return c.GapFreeID
	}
	return c.PctIdentity
}

// selectCandidates reduces a locus's candidates to the ones to report.
// With bestOnly the single candidate maximizing the kind's criterion is
// kept, first occurrence winning exact ties. Otherwise every candidate is
// kept, in scan order.
func selectCandidates(candidates []Candidate, kind AssemblyKind, bestOnly bool) []Candidate {
	if len(candidates) == 0 {
		return nil
	}
	if !bestOnly {
		return candidates
	}

	best := 0
	for i := 1; i < len(candidates); i++ {
		if criterion(candidates[i], kind) > criterion(candidates[best], kind) {
			best = i
		}
	}

	return candidates[best : best+1]
}
