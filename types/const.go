package types

// floatCmpEpsilon is the tolerance used when comparing floats or testing
// vectors for near-zero length throughout the types package.
const floatCmpEpsilon float32 = 1e-6
