package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/moletrap/grid"
)

var (
	// ErrInvalidParams indicates unusable instance parameters.
	ErrInvalidParams = errors.New("dataset: invalid instance parameters")
	// ErrCorruptArtifact indicates a persisted file that cannot be trusted.
	ErrCorruptArtifact = errors.New("dataset: corrupt artifact")
)

// InstanceParams identifies a family of random instances.
type InstanceParams struct {
	Shape     []int `yaml:"shape"`
	NPoints   int   `yaml:"npoints"`
	Threshold int   `yaml:"threshold"`
}

// Validate checks the shape, the threshold and that NPoints fits the grid.
func (p InstanceParams) Validate() error {
	if len(p.Shape) == 0 {
		return fmt.Errorf("%w: empty shape", ErrInvalidParams)
	}
	size := 1
	for _, d := range p.Shape {
		if d <= 0 {
			return fmt.Errorf("%w: shape %v", ErrInvalidParams, p.Shape)
		}
		size *= d
	}
	if p.Threshold <= 0 {
		return fmt.Errorf("%w: threshold %d", ErrInvalidParams, p.Threshold)
	}
	if p.NPoints < 0 || p.NPoints > size {
		return fmt.Errorf("%w: npoints %d for %d cells", ErrInvalidParams, p.NPoints, size)
	}

	return nil
}

// Equal compares by value.
func (p InstanceParams) Equal(o InstanceParams) bool {
	if p.NPoints != o.NPoints || p.Threshold != o.Threshold || len(p.Shape) != len(o.Shape) {
		return false
	}
	for i := range p.Shape {
		if p.Shape[i] != o.Shape[i] {
			return false
		}
	}

	return true
}

// Canonical returns p with its shape in canonical (descending) order.
func (p InstanceParams) Canonical() InstanceParams {
	_, sorted := grid.CanonicalOrder(p.Shape)
	return InstanceParams{Shape: sorted, NPoints: p.NPoints, Threshold: p.Threshold}
}

// Dir returns the directory holding artifacts of this family under root:
// root/threshold<t>/<canonical shape key>.
func (p InstanceParams) Dir(root string) string {
	return filepath.Join(root, "threshold"+strconv.Itoa(p.Threshold), ShapeKey(p.Canonical().Shape))
}

// ShapeKey joins axis lengths with "x", e.g. (5, 3) → "5x3".
func ShapeKey(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = strconv.Itoa(d)
	}

	return strings.Join(parts, "x")
}

// ParseShape is the inverse of ShapeKey. Every axis must be positive.
func ParseShape(key string) ([]int, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty shape", ErrInvalidParams)
	}
	parts := strings.Split(key, "x")
	shape := make([]int, len(parts))
	for i, s := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: shape %q", ErrInvalidParams, key)
		}
		shape[i] = d
	}

	return shape, nil
}
