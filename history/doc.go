// Package history contains concrete HistoryStore implementations: a volatile
// in-memory store for tests and demos, and a SQLite-backed store for durable
// chat logs. The store contract lives in the core package; depend on
// core.HistoryStore in your code and select an implementation at wiring time.
package history
