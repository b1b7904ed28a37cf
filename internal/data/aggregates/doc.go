// Package aggregates owns the transaction boundary of an ingestion run.
//
// It maps driver errors onto domain codes and reports pass outcomes through
// Hooks. Table-level access stays in internal/data/repos.
package aggregates
