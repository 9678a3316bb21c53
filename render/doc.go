// Package render composites the layer stack onto a pixel display.
//
// Only dirty regions are repainted: for every layer that moved, the union of
// its old and new bounds. Each pixel of a dirty region takes the color of the
// first layer in paint order that covers it, or the background color.
package render
