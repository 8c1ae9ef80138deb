package game

// Agent makes decisions for a seat. It receives a snapshot and the legal
// choices and must return one of them; the engine rejects anything else.
type Agent interface {
	MakeDecision(ctx DecisionContext, valid []ValidAction) Decision
}

// AgentFunc adapts a function to Agent.
type AgentFunc func(ctx DecisionContext, valid []ValidAction) Decision

// MakeDecision calls f.
func (f AgentFunc) MakeDecision(ctx DecisionContext, valid []ValidAction) Decision {
	return f(ctx, valid)
}
