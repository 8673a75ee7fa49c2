package state

// Package state contains the Screen contract and the concrete screens of
// the application: the initial screen, the two alternate primary screens,
// and the secondary overlay screen. Screens are pure event-to-transition
// functions plus a re-derivable layout; the window handle lifecycle belongs
// to the machine.
