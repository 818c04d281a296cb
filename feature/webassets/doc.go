// Package webassets prepares the static web files of the Little Gallery firmware.
//
// The firmware serves index.html, style.css and app.js from its flash
// filesystem. This package runs before the filesystem image is built and
// makes sure those files are in place.
//
// # Build Checks
//
//   - Data directory: <project>/data is created when missing (warning only).
//   - Required files: missing index.html, style.css or app.js are reported as a warning.
//   - Compression: when custom_compress_web is "true", each present file gets a
//     gzip sibling (<name>.gz) that the async web server serves as-is.
//
// None of these conditions fail the build.
//
// # Preview Server
//
// The Feature type plugs into the serve command and serves the data directory
// like the device does, preferring .gz siblings for gzip-capable clients.
//
//   - GET /api/assets : Reports present, missing and compressed required files.
//   - GET /* : Serves files, "/" maps to index.html.
//
// # Publishing
//
// Publisher uploads the data directory to an S3/MinIO bucket so devices and
// test rigs can fetch the assets; .gz files keep Content-Encoding: gzip.
package webassets
