// Package probe sanity-checks the configuration PlatformIO reports for the project.
//
// CI runs "pio project config --json-output" to discover the build
// environments. Keys of the form "env:<name>" declare an environment; the
// part after the tag is the environment name.
//
// # Checks
//
//   - Fixture self-test (RunFixtures): prints what the extraction logic makes of
//     three canned payloads. It is a demonstration and never fails.
//   - Live probe (Prober.Run): runs the real command. A non-zero exit, output
//     that is not JSON, or a command that cannot run is a failure. Finding no
//     environments is not.
//
// # HTTP Endpoints
//
//   - GET /api/environments : Runs the live probe (preview server only).
package probe
