// Package links implements the link-pattern substitution engine: an ordered
// registry of wiki link patterns, the replacement strategies that turn a
// match into an anchor, and the placeholder pass that shields finished
// anchors from the markdown converter.
package links
