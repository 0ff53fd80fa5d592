// Package host is the embedding entry point. It builds the one OS and one
// display Driver of a process, drives them through setup, the main loop
// and shutdown, and performs restart-on-exit.
package host
