// Package document owns the in-memory setup.cfg being built: loading any
// pre-existing file, merging translated metadata into it without touching
// unrecognized sections or keys, and writing it back in canonical section
// order using the configparser dialect that setuptools reads.
package document
