// Package syft reads SBOM documents produced by the Syft scanner
// and digs the raw license expression strings out of each artifact.
package syft
