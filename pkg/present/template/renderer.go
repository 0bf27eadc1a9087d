package template

import "io"

// Renderer resolves and executes named templates. RenderString executes raw
// template content instead of a file lookup; both optionally tee the result
// into any supplied writers.
type Renderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
