package scene

import (
	"ShapePong/geometry"
	"ShapePong/pixel"
	"ShapePong/shape"

	"github.com/pkg/errors"
)

// Builder assembles a scene. Layers are painted in the order they are added:
// the first layer added wins every pixel it covers.
type Builder struct {
	layers []Layer
	movers []Mover
	err    error
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Layer(s shape.Shape, c pixel.Color, center geometry.Vector2) LayerID {
	if err := s.Validate(); err != nil && b.err == nil {
		b.err = errors.Wrapf(err, "layer %d", len(b.layers))
	}
	b.layers = append(b.layers, Layer{
		Shape:   s,
		Color:   c,
		PosLast: center,
		Pos:     center,
		PosNext: center,
	})
	return LayerID(len(b.layers) - 1)
}

func (b *Builder) Mover(layer LayerID, velocity geometry.Vector2) MoverID {
	if (layer < 0 || int(layer) >= len(b.layers)) && b.err == nil {
		b.err = errors.Errorf("mover %d: unknown layer %d", len(b.movers), layer)
	}
	b.movers = append(b.movers, Mover{Layer: layer, Velocity: velocity})
	return MoverID(len(b.movers) - 1)
}

func (b *Builder) Build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.layers) == 0 {
		return nil, errors.New("scene has no layers")
	}

	s := &Scene{
		layers: b.layers,
		order:  make([]LayerID, len(b.layers)),
		movers: b.movers,
	}
	for i := range s.order {
		s.order[i] = LayerID(i)
	}
	b.layers, b.movers = nil, nil
	return s, nil
}
