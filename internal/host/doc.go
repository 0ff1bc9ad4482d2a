// Package host holds the capabilities the tooltip add-on needs from the
// application it runs inside: render hooks announcing freshly rendered
// surfaces, a global pointer-move source and a global keyboard source.
//
// Listener callbacks are always invoked outside the registry locks, so a
// listener may register or remove listeners itself.
package host
