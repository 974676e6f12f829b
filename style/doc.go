// Package style answers the metric, geometry and drawing questions a
// check box asks its style.
//
// Style is the interface widgets depend on; Common implements it with the
// classic desktop geometry: the indicator sits vertically centered at the
// leading edge and the label follows after the label spacing. Right-to-left
// layouts are obtained by mirroring the left-to-right rectangles.
//
// Metrics and colors come from a Config, which can be decoded from YAML:
//
//	indicator_width: 16
//	indicator_height: 16
//	label_spacing: 6
//	palette:
//	  text: "#1e1e1e"
//	  focus: "#3daee9"
package style
