// Package supervisor implements a type-indexed resource pool and a
// factory-observer protocol layered on top of it: an Overseer holds at
// most one value per concrete resource type, and registered Factory
// implementations react to inserts, updates, and removals to build,
// rebuild, or tear down whatever Handle they're responsible for.
package supervisor
