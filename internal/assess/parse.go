package assess

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// reportSuffix marks the trimmed pairwise alignment reports written by
// the upstream aligner into each locus's directory.
const reportSuffix = ".trimmed_align.txt"

var (
	scoreRegex    = regexp.MustCompile(`^#\s+Score:\s+(\S+)`)
	identityRegex = regexp.MustCompile(`^#\s+Identity:\s+(\d+)/(\d+)\s+\(\s*(\d+(?:\.\d+)?)%\)`)
	entityRegex   = regexp.MustCompile(`^#\s+([12]):\s+(\S+)`)
)

// alignment is the parsed content of one report: the header stats plus
// the two gap-padded sequences of the alignment block.
type alignment struct {
	// score reported by the aligner
	score float64

	// pctIdentity reported by the aligner (0-100). It folds gap
	// penalties into the denominator
	pctIdentity float64

	// refSeq is the aligned reference sequence, gap-padded with '-'
	refSeq string

	// asmSeq is the aligned assembled sequence, gap-padded with '-'
	asmSeq string
}

// parseReport reads an EMBOSS style pairwise alignment report. The header
// is scanned for the score and identity markers and for the names of the
// two aligned entities; header scanning stops at the first content line of
// the alignment block. The block rows ("name  start  seq  end", first the
// reference and then the assembled sequence) are concatenated into the two
// gap-padded sequences.
func parseReport(data []byte) (*alignment, error) {
	aln := &alignment{}

	var names [2]string
	var seqs [2]strings.Builder
	var scoreFound, identityFound bool

	header := true
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()

		if header && strings.HasPrefix(line, "#") {
			if m := scoreRegex.FindStringSubmatch(line); m != nil {
				score, err := strconv.ParseFloat(m[1], 64)
				if err != nil {
					return nil, fmt.Errorf("failed to parse alignment score %q: %v", m[1], err)
				}
				aln.score = score
				scoreFound = true
			} else if m := identityRegex.FindStringSubmatch(line); m != nil {
				// the percentage is already rounded by the aligner
				aln.pctIdentity, _ = strconv.ParseFloat(m[3], 64)
				identityFound = true
			} else if m := entityRegex.FindStringSubmatch(line); m != nil {
				if m[1] == "1" {
					names[0] = m[2]
				} else {
					names[1] = m[2]
				}
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		header = false // first content row, the header is behind us

		// sequence rows are "name  start  seq  end". The consensus row
		// between them never leads with an entity name
		fields := strings.Fields(line)
		if len(fields) != 4 {
			continue
		}

		switch {
		case matchesEntity(fields[0], names[0]):
			seqs[0].WriteString(fields[2])
		case matchesEntity(fields[0], names[1]):
			seqs[1].WriteString(fields[2])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read alignment report: %v", err)
	}

	if !scoreFound || !identityFound {
		return nil, fmt.Errorf("missing score or identity marker in report header")
	}

	aln.refSeq = seqs[0].String()
	aln.asmSeq = seqs[1].String()
	if aln.refSeq == "" || aln.asmSeq == "" {
		return nil, fmt.Errorf("missing aligned sequences in report")
	}
	if len(aln.refSeq) != len(aln.asmSeq) {
		return nil, fmt.Errorf("aligned sequences differ in length: %d vs %d", len(aln.refSeq), len(aln.asmSeq))
	}

	return aln, nil
}

// matchesEntity reports whether a row's leading token refers to the named
// entity from the report header. The aligner truncates long names in the
// alignment block, so a block token may be a prefix of the header name.
func matchesEntity(token, name string) bool {
	if name == "" {
		return false
	}
	return token == name || strings.HasPrefix(name, token)
}
