// Package markdown provides the goldmark-backed converter behind the
// renderer, plus the converter capabilities the link layer depends on: the
// metacharacter escape table and the placeholder token hasher.
package markdown
