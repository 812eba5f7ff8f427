// Package triangle holds assets embedded into the binary.
package triangle

import "embed"

// BasisPaths contains data/input.csv and data/expected.csv: one test vector
// per independent path through the classifier and its expected label.
//
//go:embed data/*.csv
var BasisPaths embed.FS
