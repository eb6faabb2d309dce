package profile

// Package profile manages validation profiles: their lifecycle, dataset
// normalization and transformation, recovery correction, resolution of a
// profile's settings into a runnable configuration, and profile file
// import/export.
