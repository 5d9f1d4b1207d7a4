// Package rfcli provides a terminal reader for IETF RFC documents.
// It fuzzy-searches the RFC index, caches documents locally, strips
// pagination artifacts for display, and can ask a language model for a
// short summary of a document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, http/, bubbletea/, gemini/).
package rfcli
