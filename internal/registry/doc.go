// Package registry holds the three in-memory catalogs the system is built
// around: AI-SWE tasks, the challenges that limit AI performance on them,
// and candidate solutions. Registries are seeded once at startup and are
// read-only afterwards, so they are safe to share across goroutines.
package registry
