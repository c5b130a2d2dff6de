package reconstruction

import (
	"fmt"

	"github.com/edarioq/prop-ordering/internal/sorting/field"
)

// Factory creates appropriate reconstructors for different list shapes
type Factory struct {
	reconstructors map[field.Shape]Reconstructor
}

// NewFactory creates a new reconstruction factory
func NewFactory() *Factory {
	slot := NewSlotReconstructor()
	return &Factory{
		reconstructors: map[field.Shape]Reconstructor{
			field.ShapeParams:     NewJoinedReconstructor(),
			field.ShapeAttributes: slot,
			field.ShapeMembers:    slot,
		},
	}
}

// CreateReconstructor returns the reconstructor for the given shape
func (f *Factory) CreateReconstructor(shape field.Shape) (Reconstructor, error) {
	r, ok := f.reconstructors[shape]
	if !ok {
		return nil, fmt.Errorf("no reconstructor found for shape %s", shape)
	}
	return r, nil
}
