package model

// WidgetKind identifies the type of a layout element.
type WidgetKind int

const (
	// WidgetText is a static label.
	WidgetText WidgetKind = iota

	// WidgetButton fires an event with the element key when activated.
	WidgetButton

	// WidgetInput is a single-line text entry whose current content is
	// included in event value snapshots under the element key.
	WidgetInput

	// WidgetProgress is a percentage indicator, hidden until the first
	// progress report and hidden again at 100.
	WidgetProgress
)

// Widget is one element of a window layout. Text holds a localization key;
// the driver resolves it at render time. Key identifies the element in
// events and value snapshots; static labels leave it empty.
type Widget struct {
	Kind WidgetKind
	Key  string
	Text string
}

// Row is one horizontal group of widgets.
type Row []Widget

// Layout is a declarative window description. It carries no rendering
// state and can be re-derived at any time when a window is (re)opened.
type Layout struct {
	Title     string // localization key for the window title
	Rows      []Row
	Frameless bool // render without a titlebar (secondary overlays)
}

// ProgressValue is the value a screen pushes to a WidgetProgress element.
// The screen owning the indicator decides visibility: shown at the first
// report, hidden and reset once a report reaches 100.
type ProgressValue struct {
	Percent int
	Visible bool
}

// Label builds a static text widget.
func Label(textKey string) Widget {
	return Widget{Kind: WidgetText, Text: textKey}
}

// Button builds a button widget firing the given event key.
func Button(textKey, eventKey string) Widget {
	return Widget{Kind: WidgetButton, Key: eventKey, Text: textKey}
}

// Input builds a text entry widget reported under the given value key.
func Input(valueKey string) Widget {
	return Widget{Kind: WidgetInput, Key: valueKey}
}

// Progress builds a progress indicator widget under the given key.
func Progress(key string) Widget {
	return Widget{Kind: WidgetProgress, Key: key}
}
