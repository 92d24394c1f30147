package infocache

// Package infocache provides small bounded LRU caches for video and
// playlist metadata fetched through the extraction backend, so revisiting
// a recently viewed page does not refetch it.
