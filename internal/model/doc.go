package model

// Package model defines domain data structures used across the app: validation
// profiles, measurement datasets, profile status enums, and the catalog of
// regression models a profile can be tested against. Structures are designed
// for direct binding in the UI and explicit state transitions.
