// Package dataset turns solved instances into a persistent, canonical
// collection.
//
// What:
//
//   - InstanceParams describes one family of instances (shape, preset trap
//     count, mole size) and owns the on-disk directory naming.
//   - Canonicalize reorders axes by descending length so that (5, 3) and
//     (3, 5) instances are stored identically.
//   - Save/Load persist a (grid, solution) pair as one YAML artifact;
//     ReadGrid/WriteGrid handle bare grid files.
//   - Catalog indexes persisted artifacts in SQLite.
//   - Metrics exports Prometheus counters for a generation run.
//   - Generator drives sampling, solving, verification and persistence, for
//     one instance (MakeOne) or for a budgeted batch (MakeSeveral).
//
// Layout:
//
//	<root>/threshold<t>/<AxBx…>/<name>.yaml   (axis lengths descending)
//
// Errors:
//
//   - ErrInvalidParams: bad shape, threshold or preset count.
//   - ErrCorruptArtifact: an artifact or grid file that does not decode into
//     consistent grids.
//   - solver.ErrInconsistentResult: a completion failed verification; batches abort.
package dataset
