// Package league resolves the free-text competition/division labels of the
// source site to stable short league codes ("1BL-2017", "RLW-2016", ...).
//
// The key table is compiled in: entries are added by code change when a new
// competition appears, never at runtime. Unknown keys are a fatal condition
// by design.
package league
