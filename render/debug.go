package render

// DebugState holds debug overlay flags. It lives on the App so it persists
// across restarts.
type DebugState struct {
	ShowGrid bool // Show cell grid lines and the player's neighborhood
}

// Toggle flips the grid overlay
func (d *DebugState) Toggle() {
	d.ShowGrid = !d.ShowGrid
}
