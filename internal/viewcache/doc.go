package viewcache

// Package viewcache turns the ordered navigation stack into a bounded set of
// materialized, reusable view instances. Reconcile consumes the latest
// descriptor sequence, reuses instances whose identity is unchanged, creates
// missing ones, and evicts down to the configured budget while always keeping
// the home instance and the active instance alive. The UI reads the result
// through LiveInstances and ActiveID to decide what stays mounted and what is
// foregrounded.
