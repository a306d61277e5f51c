package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/moletrap/grid"
)

const artifactExt = ".yaml"

// artifact is the on-disk form of one canonical instance.
type artifact struct {
	Shape     []int `yaml:"shape,flow"`
	Threshold int   `yaml:"threshold"`
	Grid      []int `yaml:"grid,flow"`
	Solution  []int `yaml:"solution,flow"`
}

// gridFile is the on-disk form of a bare grid.
type gridFile struct {
	Shape []int `yaml:"shape,flow"`
	Cells []int `yaml:"cells,flow"`
}

// Save canonicalizes (g, solution) and writes it to p.Dir(root)/<name>.yaml,
// creating directories as needed. An existing artifact is never overwritten.
// Returns the artifact path.
func Save(root, name string, p InstanceParams, g, solution *grid.Grid) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: artifact name %q", ErrInvalidParams, name)
	}
	c, err := Canonicalize(p, g, solution)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(artifact{
		Shape:     c.Shape,
		Threshold: p.Threshold,
		Grid:      c.Grid.Values(),
		Solution:  c.Solution.Values(),
	})
	if err != nil {
		return "", fmt.Errorf("dataset: encode %s: %w", name, err)
	}

	dir := p.Dir(root)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("dataset: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, name+artifactExt)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("dataset: create %s: %w", path, err)
	}
	_, werr := f.Write(data)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("dataset: write %s: %w", path, werr)
	}

	return path, nil
}

// Load reads an artifact written by Save and returns its grid, its solution
// and the threshold it was solved for.
func Load(path string) (g, solution *grid.Grid, threshold int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	var a artifact
	if err = yaml.Unmarshal(data, &a); err != nil {
		return nil, nil, 0, fmt.Errorf("%w: %s: %v", ErrCorruptArtifact, path, err)
	}
	if a.Threshold <= 0 {
		return nil, nil, 0, fmt.Errorf("%w: %s: threshold %d", ErrCorruptArtifact, path, a.Threshold)
	}
	if g, err = decodeCells(a.Shape, a.Grid); err != nil {
		return nil, nil, 0, fmt.Errorf("%s: grid: %w", path, err)
	}
	if solution, err = decodeCells(a.Shape, a.Solution); err != nil {
		return nil, nil, 0, fmt.Errorf("%s: solution: %w", path, err)
	}

	return g, solution, a.Threshold, nil
}

// ReadGrid decodes a YAML grid file {shape: [...], cells: [...]}.
func ReadGrid(r io.Reader) (*grid.Grid, error) {
	var f gridFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty grid file", ErrCorruptArtifact)
		}
		return nil, fmt.Errorf("%w: %v", ErrCorruptArtifact, err)
	}

	return decodeCells(f.Shape, f.Cells)
}

// WriteGrid encodes g in the format read by ReadGrid.
func WriteGrid(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return grid.ErrNilGrid
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(gridFile{Shape: g.Shape(), Cells: g.Values()}); err != nil {
		return fmt.Errorf("dataset: encode grid: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("dataset: encode grid: %w", err)
	}
	_, err := w.Write(buf.Bytes())

	return err
}

// decodeCells builds a grid from a shape and strictly 0/1 cells.
func decodeCells(shape, cells []int) (*grid.Grid, error) {
	for i, v := range cells {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: cell %d holds %d", ErrCorruptArtifact, i, v)
		}
	}
	g, err := grid.FromValues(shape, cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArtifact, err)
	}

	return g, nil
}
