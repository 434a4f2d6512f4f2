package assess

import (
	"math"
	"strings"
)

// gapRun is the gap character padded into aligned sequences.
const gapRun = "-"

// ungappedLen is the length of an aligned sequence with its gaps removed.
func ungappedLen(seq string) int {
	return len(seq) - strings.Count(seq, gapRun)
}

// refCoveredLen counts the reference bases actually spanned by the
// assembled alignment. Where the reference starts (or ends) with real
// bases but the assembled sequence starts (or ends) with a gap run, that
// overhang is trimmed off the reference before counting, so reference
// ends the assembly never reached do not inflate the result.
func refCoveredLen(ref, asm string) int {
	if ref == "" || asm == "" {
		return 0
	}

	covered := ref
	if ref[0] != '-' && asm[0] == '-' {
		trim := len(asm) - len(strings.TrimLeft(asm, gapRun))
		if trim > len(covered) {
			trim = len(covered)
		}
		covered = covered[trim:]
	}
	if ref[len(ref)-1] != '-' && asm[len(asm)-1] == '-' {
		trim := len(asm) - len(strings.TrimRight(asm, gapRun))
		if trim > len(covered) {
			trim = len(covered)
		}
		covered = covered[:len(covered)-trim]
	}

	return ungappedLen(covered)
}

// coverageRatio is the ungapped reference length over the ungapped
// assembled length. Above 1 the reference outspans the assembled
// sequence, below 1 the assembled sequence is longer. Note that spacers
// or extraneous repeats in the assembly can shift this ratio well below 1.
func coverageRatio(ref, asm string) float64 {
	asmLen := ungappedLen(asm)
	if asmLen == 0 {
		return 0
	}
	return float64(ungappedLen(ref)) / float64(asmLen)
}

// gapFreeIdentity computes the percent of reference bases that match the
// assembled sequence at the same aligned position, ignoring every column
// where the reference has a gap. Unlike the aligner's reported identity
// it is unaffected by insertions present only in the assembled sequence.
// The result is rounded to two decimal places; an all-gap reference
// yields 0.
func gapFreeIdentity(ref, asm string) float64 {
	var total, matches int
	for i := 0; i < len(ref) && i < len(asm); i++ {
		if ref[i] == '-' {
			continue
		}
		total++
		if ref[i] == asm[i] {
			matches++
		}
	}

	if total == 0 {
		return 0
	}
	return math.Round(float64(matches)/float64(total)*100*100) / 100
}
