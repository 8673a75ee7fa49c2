package model

// Package model defines domain data structures shared across the app: GUI
// events and input values, transition results with their reserved sentinels,
// declarative window layouts, and the background job status enum. Structures
// are opaque to the rendering layer and designed for explicit state
// transitions.
