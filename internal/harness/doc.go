// Package harness runs scripted conformance scenarios against the runtime.
//
// A scenario brings up a host over an in-memory platform back-end and a
// headless display, executes a list of operations, and checks both the
// per-step results and the output the runtime produced.
//
// # Scenario Format
//
//	name: center_window
//	description: "Centering honors the current screen"
//	project: game.yaml          # optional, relative to the scenario file
//	backend:
//	  screens:
//	    - {x: 0, y: 0, width: 1920, height: 1080}
//	  window: {width: 800, height: 600}
//	  stdin: "2\n"
//	steps:
//	  - op: center_window
//	  - op: window_position
//	    expect:
//	      result: {x: 560, y: 240}
//	assertions:
//	  - type: output_contains
//	    stream: stdout
//	    text: "Quit?"
//	  - type: hooks
//	    hooks: [initialize_core, initialize_runtime, finalize_runtime, finalize_core]
//
// # Assertion Types
//
//   - output_contains: some output line contains text (optionally on stream)
//   - output_order: the given texts appear in output in this order
//   - call_count: op ran exactly count times
//   - hooks: the back-end lifecycle hooks, exactly
//   - restart: the process re-executed itself once, with args
//
// # Deterministic Testing
//
// The instance ID is fixed (scenario.instance_id or the static default),
// the back-end clock only moves on delay_usec and low-processor frames, and
// error reports carry the location given in the step. Traces are therefore
// identical across runs and can be compared against golden files.
package harness
