// Package template is the seam between presentation renderers and the
// template engine. The Renderer interface mirrors the go-template engine
// contract; the shipped implementation executes pongo2 template sets loaded
// from an fs.FS or a directory, with per-path caching.
package template
