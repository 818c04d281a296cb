// Package platformio reads project options from a PlatformIO platformio.ini.
//
// Build helpers running outside of the PlatformIO process still need the
// custom options declared in the project file, such as custom_compress_web.
// Options are resolved the way PlatformIO does it: the [env:<name>] section
// first, following its extends chain, then the shared [env] section.
package platformio
