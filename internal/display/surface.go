// Package display specifies the small OLED the pad carries: the key-label
// menu surface and the profile-icon presenter. Text rendering and bitmap
// decoding live behind interfaces; this package owns only the presentation
// sequencing.
package display

// Surface renders the key-label menu. Labels and title are staged and pushed
// together by ShowMenu; ShowMessage replaces the whole surface with a single
// diagnostic line.
type Surface interface {
	SetLabel(index int, text string)
	SetTitle(text string)
	ShowMenu()
	ShowMessage(text string)
}

// Bitmap is an opened icon image. Icons are vertical sprite sheets: a
// multi-frame icon is frameHeight-tall frames stacked top to bottom.
type Bitmap interface {
	// FrameCount reports how many frames of the given height the image
	// holds. Anything not taller than one frame is a single-frame icon.
	FrameCount(frameHeight int) int
	// Blit draws the given frame to the screen.
	Blit(frame int)
	Close() error
}

// Blitter opens icon files for display. The decode-and-draw routine is
// hardware-specific and stays behind this interface.
type Blitter interface {
	OpenBitmap(path string) (Bitmap, error)
}

// Presenter shows a profile's icon, optionally animated, and reports whether
// the presentation ran to completion (false = interrupted by encoder input).
type Presenter interface {
	Present(icon string) bool
}
