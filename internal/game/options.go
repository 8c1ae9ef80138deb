package game

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithEvaluator replaces the showdown evaluator.
func WithEvaluator(evaluate EvaluateFunc) EngineOption {
	return func(e *Engine) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

// WithActionBound sets how many decisions each player may make on one street
// before the round is forced closed and flagged. The default is 20.
func WithActionBound(perPlayer int) EngineOption {
	return func(e *Engine) {
		if perPlayer > 0 {
			e.actionsPerPlayer = perPlayer
		}
	}
}
