package ports

import (
	"fpnpower/domain/electrode"
)

// TableSource loads one band results file.
// Implementations never fail the run: a missing, empty or unreadable source
// is reported as (nil, false).
type TableSource interface {
	Load(source string, band electrode.Band) (electrode.Table, bool)
}
