// Package spaces resolves space (tenant) identifiers to absolute URLs and
// encodes page names appended to them.
package spaces
