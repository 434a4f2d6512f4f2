package assess

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// scaffoldMarker is the filename substring the upstream pipeline stamps
// onto scaffold alignment reports.
const scaffoldMarker = "Scaffold"

// report is one retained alignment file, read off disk by the scanner.
// Everything downstream of the scanner works on these, not on paths.
type report struct {
	// name of the file inside the locus directory
	name string

	// path of the file
	path string

	// data is the full report content
	data []byte
}

// scanLocus lists a locus's alignment directory and reads the reports to
// assess. Files are kept when they end with the report suffix, when they
// carry the scaffold marker for scaffold assemblies, and when they match
// the optional priority prefix. Zero-length scaffold reports, left behind
// when the aligner failed, are skipped. Directory listing order makes the
// scan order deterministic for a locus.
func scanLocus(dir string, kind AssemblyKind, priority string) ([]report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var reports []report
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, reportSuffix) {
			continue
		}
		if kind == Scaffold && !strings.Contains(name, scaffoldMarker) {
			continue
		}

		// if we know which reference we want to assemble, skip all other files
		if priority != "" && !strings.HasPrefix(name, priority) {
			continue
		}

		path := filepath.Join(dir, name)
		if kind == Scaffold {
			// make sure the file is actually populated and the aligner didn't fail
			info, err := entry.Info()
			if err != nil || info.Size() == 0 {
				continue
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			log.Warnf("failed to read alignment report %s: %v", path, err)
			continue
		}

		reports = append(reports, report{
			name: name,
			path: path,
			data: data,
		})
	}

	return reports, nil
}

// isolateLabel derives the reference isolate's label from an alignment
// filename. Filenames follow "<isolate>.<rest>.trimmed_align.txt"; the
// label is the leading token up to the first dot.
func isolateLabel(filename string) string {
	if i := strings.IndexByte(filename, '.'); i >= 0 {
		return filename[:i]
	}
	return filename
}
