package machine

// Package machine implements the cooperative state machine driving the
// application: it owns the screen registry, the single active primary
// screen, the ordered set of open secondary screens, and the worker pool.
// Its main loop polls the GUI boundary for the next event, routes it to the
// owning screen, and applies the resulting transition.
