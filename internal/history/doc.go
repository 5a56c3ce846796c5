// Package history persists a log of filename resolutions in SQLite.
//
// Every resolve invocation records the session id, the config file it read,
// the resolved output path, and the hostname, so operators can audit where
// recordings were sent. The database is a convenience log, not critical
// state; schema changes bump the version in schema.go and users clear the
// database to adopt the new schema.
package history
