// Package workspace allocates uniquely named output directories for runs of
// a script or experiment. Roots are named by date tag and index
// ("20240131_001") or by a caller-supplied prefix and counter ("models3"),
// and optional subdirectories are created alongside. The returned Workspace
// is an immutable handle resolving subdirectory names to paths.
package workspace
