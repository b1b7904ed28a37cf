// Package aggregates defines the coded errors shared by the write paths.
//
// Every failure of an ingestion run carries one Code, so callers can map it to
// a run status, a metrics label or an HTTP status without string matching.
package aggregates
