package assess

import (
	"fmt"
	"strings"
)

// needleReport renders an EMBOSS needle style report for tests: the
// commented header with score and identity markers followed by the
// gap-padded alignment block in 50-column chunks. Entity names in the
// block are truncated to 13 characters the way the aligner prints them.
func needleReport(refName, asmName, refSeq, asmSeq string, score float64, identity string) string {
	var b strings.Builder

	b.WriteString("########################################\n")
	b.WriteString("# Program: needle\n")
	b.WriteString("# Rundate: Mon  1 Jan 2018 10:00:00\n")
	b.WriteString("# Align_format: srspair\n")
	b.WriteString("# Report_file: stdout\n")
	b.WriteString("########################################\n\n")
	b.WriteString("#=======================================\n#\n")
	b.WriteString("# Aligned_sequences: 2\n")
	fmt.Fprintf(&b, "# 1: %s\n", refName)
	fmt.Fprintf(&b, "# 2: %s\n", asmName)
	b.WriteString("# Matrix: EDNAFULL\n")
	b.WriteString("# Gap_penalty: 10.0\n")
	b.WriteString("# Extend_penalty: 0.5\n#\n")
	fmt.Fprintf(&b, "# Length: %d\n", len(refSeq))
	fmt.Fprintf(&b, "# Identity:     %s\n", identity)
	fmt.Fprintf(&b, "# Similarity:   %s\n", identity)
	fmt.Fprintf(&b, "# Gaps:         0/%d ( 0.0%%)\n", len(refSeq))
	fmt.Fprintf(&b, "# Score: %.1f\n", score)
	b.WriteString("#\n#\n#=======================================\n\n")

	for i := 0; i < len(refSeq); i += 50 {
		end := i + 50
		if end > len(refSeq) {
			end = len(refSeq)
		}
		fmt.Fprintf(&b, "%-13s %6d %s %6d\n", truncName(refName), i+1, refSeq[i:end], end)
		fmt.Fprintf(&b, "%21s%s\n", "", consensus(refSeq[i:end], asmSeq[i:end]))
		fmt.Fprintf(&b, "%-13s %6d %s %6d\n", truncName(asmName), i+1, asmSeq[i:end], end)
		b.WriteString("\n")
	}

	b.WriteString("\n#---------------------------------------\n")
	b.WriteString("#---------------------------------------\n")

	return b.String()
}

func truncName(name string) string {
	if len(name) > 13 {
		return name[:13]
	}
	return name
}

func consensus(a, b string) string {
	marks := make([]byte, len(a))
	for i := range marks {
		if a[i] == b[i] && a[i] != '-' {
			marks[i] = '|'
		} else {
			marks[i] = ' '
		}
	}
	return string(marks)
}
