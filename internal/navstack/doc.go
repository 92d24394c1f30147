package navstack

// Package navstack implements the navigation history as an ordered stack of
// view descriptors with push/pop/replace/reset operations and a synchronous
// change listener. The stack owns the sequence; the view cache consumes it
// read-only through Descriptors.
