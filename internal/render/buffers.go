package render

import (
	"errors"

	"galaxy/internal/galaxy"
)

// cloudBuffers holds the renderer-side data built for one cloud.
type cloudBuffers struct {
	cloud  *galaxy.PointCloud
	style  galaxy.Style
	colors []float32
}

// bufferSet tracks the buffers of every cloud handed to the painter and which
// one is drawn. A cloud's buffers live from show until release.
type bufferSet struct {
	byCloud map[*galaxy.PointCloud]*cloudBuffers
	active  *cloudBuffers
}

func newBufferSet() *bufferSet {
	return &bufferSet{byCloud: map[*galaxy.PointCloud]*cloudBuffers{}}
}

func (s *bufferSet) show(cloud *galaxy.PointCloud, style galaxy.Style) error {
	if cloud == nil {
		return errors.New("render: nil cloud")
	}
	if len(cloud.Colors) != len(cloud.Positions) {
		return errors.New("render: colors and positions differ in length")
	}
	b := &cloudBuffers{cloud: cloud, style: style, colors: make([]float32, 3*len(cloud.Colors))}
	fillVertexColors(b.colors, cloud.Colors)
	s.byCloud[cloud] = b
	s.active = b
	return nil
}

func (s *bufferSet) release(cloud *galaxy.PointCloud) {
	b, ok := s.byCloud[cloud]
	if !ok {
		return
	}
	delete(s.byCloud, cloud)
	b.colors = nil
	if s.active == b {
		s.active = nil
	}
}

func (s *bufferSet) len() int { return len(s.byCloud) }
