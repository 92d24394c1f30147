package model

// Package model defines domain data structures used across the app: view
// descriptors and snapshots for navigation, video/playlist/format metadata,
// toast notification payloads, and status enums. Structures are designed for
// direct binding in the UI and explicit state transitions.
