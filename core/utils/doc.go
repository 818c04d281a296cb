// Package utils provides common utility functions for the gallery-build tool.
// It includes helpers for interpreting build option values and other shared
// logic that doesn't fit into feature packages.
package utils
