package render

// Renderer is implemented by components with visual output
type Renderer interface {
	Render(ctx RenderContext, buf *Buffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
