// Package fuzztests houses Go fuzz harnesses for the keyword loader, the
// artifact renderers and the operator matcher. They guard against panics and
// against a symbol module that stops parsing on odd word lists.
package fuzztests
