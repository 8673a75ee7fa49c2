package gui

// Package gui defines the boundary between the state machine core and the
// rendering toolkit: a Platform that opens, closes, and updates windows,
// polls the next event from any open window with a bounded timeout, and
// accepts application-level events posted from other goroutines. The core
// never depends on how layouts render. A channel-backed headless driver is
// provided for tests and headless runs.
