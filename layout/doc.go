// Package layout arranges widgets whose height depends on their width.
//
// An Item reports size hints and, when its SizePolicy says so, the height
// it needs for a given width. Column stacks items vertically: it gives
// every item the full inner width and asks height-for-width items how tall
// they must be at that width.
package layout
