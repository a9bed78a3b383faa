// Package pochi bundles small conveniences for scripts and experiment
// drivers behind one façade: workspace directory allocation, configuration
// loading with strict validation, logging, timing and bulk file operations.
// Every collaborator sits behind an interface with a default implementation,
// so tests can substitute fakes through the façade options.
package pochi
