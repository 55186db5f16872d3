// Package fixed provides the two's-complement fixed-point sample model
// used throughout the pipeline. Values are carried in int64 containers
// while the declared bit width is tracked explicitly, so width growth
// across pipeline stages stays a checkable bookkeeping property rather
// than an implicit machine-word concern.
package fixed
