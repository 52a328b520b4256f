// Package knowledge contains concrete KnowledgeStore implementations and the
// default banking Q&A dataset. The store contract lives in the core package;
// depend on core.KnowledgeStore in your code and select an implementation at
// wiring time.
//
// The knowledge base is immutable during a session: Load replaces the whole
// dataset (validating and repairing records on the way in) and reads return
// defensive copies, so callers never observe partial mutation.
package knowledge
