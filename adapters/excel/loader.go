package excel

import (
	"fpnpower/domain/electrode"
	"fpnpower/internal"
	"fpnpower/internal/errors"
)

// Loader reads band result files and never fails the run: every failure is
// logged and reported as an absent table.
type Loader struct {
	logger *internal.Logger
}

// NewLoader creates a loader logging through logger
func NewLoader(logger *internal.Logger) *Loader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Loader{logger: logger}
}

// Load returns the table of one band file, or (nil, false) when the file
// is missing, empty or unreadable.
func (l *Loader) Load(source string, band electrode.Band) (electrode.Table, bool) {
	table, err := NewDataReader(source).WithLogger(l.logger).ReadTable(band)
	if err != nil {
		l.report(source, err)
		return nil, false
	}
	l.logger.Info("[Loader] Loaded %d %s electrodes from %s", table.Len(), band, source)
	return table, true
}

func (l *Loader) report(source string, err error) {
	switch errors.GetCode(err) {
	case errors.CodeMissingSource:
		l.logger.Error("[Loader] File %s not found", source)
	case errors.CodeEmptySource:
		l.logger.Warn("[Loader] %v", err)
	default:
		l.logger.Error("[Loader] An unexpected error occurred: %v", err)
	}
}
