// Package standings turns informal poker-session ledgers into clean,
// analyzable group standings.
//
// The package is split in two halves:
//   - Normalization: taking a raw tabular snapshot (a [Table]) as it comes
//     out of a spreadsheet (heterogeneous column schemas, currency-formatted
//     strings, accounting-style negatives, loose date formats) and producing
//     a canonical [Dataset] of validated [SessionRecord] values.
//   - Metrics: consuming a (possibly filtered) Dataset to derive group-wide
//     [Standings] and per-player [PlayerProfile] views, including win/loss
//     streak detection.
//
// Both halves are pure and synchronous. Normalization never fails on bad
// data: defective rows are dropped, and unusable input degrades to an empty
// Dataset. The metrics engine returns well-defined zero results on empty
// input rather than errors.
//
// This package serves as the foundational logic for the `pks` command-line
// tool, which renders these views as markdown reports.
package standings
