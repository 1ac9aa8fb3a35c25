package ports

import "fpnpower/domain/electrode"

// Renderer turns a finished report into an output artifact
type Renderer interface {
	Name() string
	Render(report *electrode.Report) error
}
