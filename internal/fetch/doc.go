package fetch

// Package fetch provides HTTP JSON retrieval helpers around an explicitly
// injected http.Client. It validates URLs before use and supports bounded
// concurrent multi-fetch. The state machine core does not depend on it;
// screens and tooling use it for peripheral data loading.
