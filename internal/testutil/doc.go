// Package testutil provides shared test helpers for tape.
//
// # Fixtures
//
// The fixtures.go file provides sample programs:
//
//   - HelloWorld, HelloWorldOutput - a complete program and the bytes it prints
//   - Commented - a program with prose between the instructions
//   - Transfer - the classic move-cell-right loop
//   - Nested - nested loops that skip and re-enter
//
// # Environment Helpers
//
// The env.go file provides temp file setup:
//
//   - WriteProgram(t, dir, name, source) - writes a program file and returns its path
//   - WriteConfig(t, dir, name, content) - writes a config file and returns its path
//
// # Assertions
//
// The assertions.go file provides engine assertions:
//
//   - AssertCells(t, m, origin, want...) - compares the cells starting at origin
//   - AssertErrorKind(t, err, kind) - checks errors.Is against a category
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    path := testutil.WriteProgram(t, t.TempDir(), "hello.bf", testutil.HelloWorld)
//	    // ... run test ...
//	}
package testutil
