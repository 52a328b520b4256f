// Package core defines the domain types and store contracts shared across
// BankBuddy: knowledge base records (Category, Question), conversation
// messages, chat history entries and the KnowledgeStore / HistoryStore
// interfaces. Implementation packages (knowledge, history) provide concrete
// backends; depend on the interfaces here and select an implementation at
// wiring time.
package core
