package wikitext

import "errors"

// ErrDocumentRequired is returned when RenderDocument receives a nil
// document.
var ErrDocumentRequired = errors.New("wikitext: document is nil")
