package galaxy

import (
	"fmt"
	"log"
)

// Viewer displays point clouds. Show makes a cloud the visible one; Release
// frees whatever renderer-side resources were created for a cloud.
type Viewer interface {
	Show(cloud *PointCloud, style Style) error
	Release(cloud *PointCloud)
}

// Model owns the active parameters and cloud and swaps both when a new
// parameter value is committed.
type Model struct {
	params Parameters
	cloud  *PointCloud
	src    Source
	viewer Viewer
}

// NewModel generates the initial cloud for p and hands it to viewer.
func NewModel(p Parameters, src Source, viewer Viewer) (*Model, error) {
	m := &Model{src: src, viewer: viewer}
	if err := m.Apply(p); err != nil {
		return nil, err
	}
	return m, nil
}

// Name returns the scene identifier.
func (m *Model) Name() string { return "galaxy" }

// Params returns the active parameters.
func (m *Model) Params() Parameters { return m.params }

// Cloud returns the active cloud.
func (m *Model) Cloud() *PointCloud { return m.cloud }

// Apply generates a cloud for next and installs it. The previous cloud is
// released only after the new one is shown; on any failure it stays active.
func (m *Model) Apply(next Parameters) error {
	cloud, err := Generate(next, m.src)
	if err != nil {
		return err
	}
	if m.viewer != nil {
		if err := m.viewer.Show(cloud, next.Style()); err != nil {
			m.viewer.Release(cloud)
			return fmt.Errorf("show galaxy: %w", err)
		}
		if m.cloud != nil {
			m.viewer.Release(m.cloud)
		}
	}
	m.params = next
	m.cloud = cloud
	return nil
}

// Regenerate rebuilds the cloud from the active parameters. It does nothing
// until a first cloud exists.
func (m *Model) Regenerate() error {
	if m.cloud == nil {
		return nil
	}
	return m.Apply(m.params)
}

// Reseed replaces the random source and regenerates.
func (m *Model) Reseed(src Source) error {
	m.src = src
	return m.Regenerate()
}

// Close releases the active cloud.
func (m *Model) Close() {
	if m.cloud != nil && m.viewer != nil {
		m.viewer.Release(m.cloud)
	}
	m.cloud = nil
}

func (m *Model) commit(next Parameters, key string) bool {
	if err := m.Apply(next); err != nil {
		log.Printf("galaxy: %s not applied: %v", key, err)
		return false
	}
	log.Printf("galaxy: %s committed, %d points", key, m.cloud.Len())
	return true
}
