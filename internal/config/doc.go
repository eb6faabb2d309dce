package config

// Package config holds the settings layer of the application: the declared
// schema of every profile setting, an in-memory settings store keyed by
// (group, key), boolean display-label conversion, and the preferences-backed
// Settings manager that the UI binds its form controls to.
