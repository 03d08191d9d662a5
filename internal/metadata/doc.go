// Package metadata reads the egg-info directory produced by the legacy
// `setup.py egg_info` command.
//
// It covers the four inputs a conversion needs:
//   - PKG-INFO: the RFC 822-style header block with the distribution fields
//   - requires.txt: install requirements plus bracketed extra groups
//   - entry_points.txt: entry point groups in config syntax
//   - not-zip-safe: a marker file whose mere presence flags the package
//
// The egg_info subprocess is treated as an opaque external command: its
// output is passed through to the console and a non-zero exit only matters
// if the metadata directory ends up missing.
package metadata
