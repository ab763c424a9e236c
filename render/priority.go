package render

// Priority determines render order. Lower values render first; captions and
// the HUD come last so they stay in front of the wireframes.
type Priority int

const (
	PriorityHypercube Priority = iota
	PriorityFractal
	PriorityCaptions
	PriorityHUD
)
