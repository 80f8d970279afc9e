package dsl

// Package dsl provides the generic structural decoders (arrays, objects,
// maps, sets, tuples, optionals, sum types) and the schema-driven record
// builder, all composed from the treedec engine core. Nothing in this
// package touches the strategy except through the documented occasions.
