// Package config holds ambient service-identity constants consumed by
// util/log's release build.
package config

// ServiceName identifies the service for log-directory naming.
const ServiceName = "seedcrop"

// AppName is the log file's base name.
const AppName = "seedcrop"

// LogExt is the log file's extension.
const LogExt = ".log"

// LogSubDir is the per-user log directory on non-Windows platforms, rooted
// under the user's home directory.
const LogSubDir = ".seedcrop/logs"

// LogWinSubDir is the per-user log directory on Windows, rooted under the
// user's cache directory.
const LogWinSubDir = "seedcrop/logs"
