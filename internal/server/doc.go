package server

// Package server runs a small localhost HTTP API that mirrors browser
// state (install queue, navigation history, health) for external
// tooling and scripts. It binds to 127.0.0.1 only.
