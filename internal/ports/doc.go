// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by the
// console runner and the HTTP handlers. Health ports let the readiness probe
// query application components without importing them.
package ports
