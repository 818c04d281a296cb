// Package runner executes external tools on behalf of the build helpers.
//
// The CommandRunner interface hides os/exec so that features invoking tools
// such as the PlatformIO CLI can be tested with a stub.
//
// # Exit Status
//
// A process that starts but exits with a non-zero status is reported as an
// *ExitError carrying the captured stdout and stderr. Failing to start the
// process at all (missing binary, cancelled context) is returned as a plain
// wrapped error.
//
// # Usage
//
//	out, err := runner.ExecRunner{}.Capture(ctx, "", "pio", "project", "config", "--json-output")
package runner
