// Package renewal turns asset records into renewal views: days remaining
// until a renewal, urgency buckets, a merged cross-kind timeline grouped by
// month, per-dimension tallies and cost totals.
//
// Every function is pure. The current time is an argument so that a request
// computes all of its figures against a single instant.
package renewal
