//go:build nothreads

package platform

const threadsEnabled = false
