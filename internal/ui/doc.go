package ui

// Package ui renders screen layouts with the Fyne toolkit and feeds user
// interactions back as events. It implements the gui.Platform boundary so
// the dispatch loop never touches toolkit types directly.
