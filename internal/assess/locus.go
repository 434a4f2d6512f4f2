package assess

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Locus is one independently assembled genomic region from the assembly
// map together with the directory holding its alignment reports.
type Locus struct {
	// ID of the locus, the first column of the assembly map
	ID string

	// Dir is the locus's alignment directory under the alignment root
	Dir string
}

// ReadMap reads the tab-separated assembly map at path. Only the first
// column, the locus id, is consumed; each locus's alignment directory is
// the id joined onto the alignment root.
func ReadMap(path, alignRoot string) ([]Locus, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the assembly map at %s: %v", path, err)
	}
	defer in.Close()

	var loci []Locus
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		id := strings.SplitN(line, "\t", 2)[0]
		loci = append(loci, Locus{
			ID:  id,
			Dir: filepath.Join(alignRoot, id),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read the assembly map at %s: %v", path, err)
	}

	return loci, nil
}
