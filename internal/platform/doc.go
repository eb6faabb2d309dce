package platform

// Package platform provides OS-level helpers: locating the per-user
// application data directory, ensuring directories exist, and building
// collision-free file names for exported profiles.
