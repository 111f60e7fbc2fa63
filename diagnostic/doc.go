// Package diagnostic provides structured errors, warnings and notes
// collected while mapping one object graph onto another.
//
// Key capabilities:
//   - Per-field assignment failures with the wrapped cause
//   - Field paths relative to the mapping root (e.g. "SiteCustomActions[1].Rights")
//   - Source and destination type pairs
//   - A combined error usable with errors.Is and errors.As
package diagnostic
