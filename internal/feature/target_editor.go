//go:build editor

package feature

const targetToken = "editor"
