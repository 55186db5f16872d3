// Package pipeline implements a streaming radix-2 decimation-in-frequency
// FFT in the single-path delay feedback (R2SDF) form, operating on
// fixed-point complex samples.
//
// The pipeline accepts one sample per Tick and emits one sample per
// Tick. A transform of size N = 2^L is realized as L chained stages,
// each owning a feedback delay line of depth 2^(L-n-1), a butterfly, a
// coefficient table, and a rotator. A single free-running counter of
// width L provides all control: stage n derives its butterfly phase
// from counter bit L-n-1 and its rotation angle from the counter bits
// below it, so no stage depends on another stage's control logic.
//
// Latency is fixed at N-1 ticks. A block of N inputs aligned to a
// counter value of zero produces its N transform outputs on the
// following N ticks, in bit-reversed bin order (see BitReverse and
// OutputBin). Internal widths grow by one bit per stage, so a sample
// whose complex magnitude is within the declared input full scale can
// never overflow any stage.
package pipeline
