package assess

import (
	"strings"
	"testing"
)

func Test_parseReport(t *testing.T) {
	ref := strings.Repeat("ACGTACGTAC", 7) + "-----"
	asm := strings.Repeat("ACGTACGTAC", 7) + "TTTTT"

	data := needleReport("a.trimmed", "b.trimmed", ref, asm, 350.0, "70/75 (93.33%)")

	aln, err := parseReport([]byte(data))
	if err != nil {
		t.Fatalf("failed to parse report: %v", err)
	}

	if aln.score != 350.0 {
		t.Errorf("score = %f, want 350.0", aln.score)
	}
	if aln.pctIdentity != 93.33 {
		t.Errorf("pctIdentity = %f, want 93.33", aln.pctIdentity)
	}
	if aln.refSeq != ref {
		t.Errorf("refSeq = %q, want %q", aln.refSeq, ref)
	}
	if aln.asmSeq != asm {
		t.Errorf("asmSeq = %q, want %q", aln.asmSeq, asm)
	}
}

// entity names longer than the aligner's column width are truncated in
// the alignment block but not in the header
func Test_parseReport_truncatedNames(t *testing.T) {
	data := needleReport(
		"NC_000001_reference.trimmed",
		"NODE_1_length_200_cov_12.trimmed",
		"ACGTACGT",
		"ACGAACGT",
		32.0,
		"7/8 (87.5%)",
	)

	aln, err := parseReport([]byte(data))
	if err != nil {
		t.Fatalf("failed to parse report: %v", err)
	}

	if aln.refSeq != "ACGTACGT" {
		t.Errorf("refSeq = %q, want ACGTACGT", aln.refSeq)
	}
	if aln.asmSeq != "ACGAACGT" {
		t.Errorf("asmSeq = %q, want ACGAACGT", aln.asmSeq)
	}
	if aln.pctIdentity != 87.5 {
		t.Errorf("pctIdentity = %f, want 87.5", aln.pctIdentity)
	}
}

// the identity percentage may carry a leading space inside the parens and
// up to two decimal digits
func Test_parseReport_identityShapes(t *testing.T) {
	for _, identity := range []string{
		"475/500 (95.0%)",
		"475/500 ( 95.0%)",
		"500/500 (100.00%)",
	} {
		data := needleReport("a.trimmed", "b.trimmed", "ACGT", "ACGT", 20.0, identity)
		if _, err := parseReport([]byte(data)); err != nil {
			t.Errorf("failed to parse report with identity %q: %v", identity, err)
		}
	}
}

func Test_parseReport_missingMarkers(t *testing.T) {
	full := needleReport("a.trimmed", "b.trimmed", "ACGT", "ACGT", 20.0, "4/4 (100.0%)")

	tests := []struct {
		name string
		data string
	}{
		{
			"missing identity",
			strings.Replace(full, "# Identity:", "# Ident:", 1),
		},
		{
			"missing score",
			strings.Replace(full, "# Score:", "# Sc:", 1),
		},
		{
			"empty file",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseReport([]byte(tt.data)); err == nil {
				t.Error("expected a parse error, got none")
			}
		})
	}
}

// metadata markers are only honored in the header block: a score line
// that first appears after the alignment block has started is not
// metadata
func Test_parseReport_headerEndsAtBlock(t *testing.T) {
	data := strings.Join([]string{
		"# 1: a.trimmed",
		"# 2: b.trimmed",
		"# Identity:     4/4 (100.0%)",
		"",
		"a.trimmed          1 ACGT          4",
		"                     ||||",
		"b.trimmed          1 ACGT          4",
		"# Score: 20.0",
		"",
	}, "\n")

	if _, err := parseReport([]byte(data)); err == nil {
		t.Error("expected a parse error for a score marker after the block, got none")
	}
}

func Test_parseReport_unequalSequences(t *testing.T) {
	data := strings.Join([]string{
		"# 1: a.trimmed",
		"# 2: b.trimmed",
		"# Identity:     4/4 (100.0%)",
		"# Score: 20.0",
		"",
		"a.trimmed          1 ACGTAC          6",
		"b.trimmed          1 ACGT          4",
		"",
	}, "\n")

	if _, err := parseReport([]byte(data)); err == nil {
		t.Error("expected a parse error for unequal sequence lengths, got none")
	}
}
