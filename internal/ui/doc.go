// Package ui is the Bubble Tea shell of the TechSphere blog.
//
// Core pieces:
//   - AppModel: owns the navigation state and renders the resolved page
//   - KeybindRegistry / KeyHandler: single keys plus SPC-prefixed leader sequences
//   - FocusManager: tab order over the page's clickable controls
//   - OverlayStack: the help overlay, dismissed with esc
//   - zoneMap: screen rectangles recorded at render time for mouse clicks
//
// The page itself comes from site.Resolve; this package only draws it and
// turns key presses and clicks into navigations.
package ui
