package common

// EmberVersion is the current version of the Ember compiler.
const EmberVersion = "0.3.1"

// EmberFileExt is the file extension of Ember source files.
const EmberFileExt = ".em"

// EmberProfileFileName is the name of the optional per-project build profile
// file read by the build driver.
const EmberProfileFileName = "ember.toml"
