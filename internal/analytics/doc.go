// Package analytics derives read-only summaries, insights, and activity
// feeds from domain snapshots. Everything here is a pure function: no
// stores, no clocks beyond the date passed in, no mutation of inputs.
package analytics
