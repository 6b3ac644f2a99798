// Package services provides domain services that operate across the entities of
// the dispatch domain.
//
// The package includes:
//   - ReferenceResolver: turns a kernel.Reference to a package or robot into a
//     stored entity, creating it on demand
//
// The resolver never opens transactions itself; it runs on repositories bound to
// the caller's unit of work so that everything it creates is rolled back with it.
package services
