// Package convert orchestrates one netctl-to-iwd conversion per input
// file: read, parse, name, derive, and write with exclusive-create
// semantics. Batch conversion recovers every failure at the per-file
// boundary; a bad profile never aborts the rest of the batch.
package convert
