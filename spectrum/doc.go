// Package spectrum bridges the fixed-point pipeline output into the
// float domain: conversion to complex128, magnitude and power
// extraction, reordering from the pipeline's bit-reversed emission
// order, and a reference DFT for validating pipeline results.
package spectrum
