package dice

// Roll evaluates an Expression using the given Source and returns a RollResult.
//
// Precondition: expr must come from Parse (Count >= 1, Sides >= 2); src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count;
// result.Total() == sum(result.Dice) + result.Modifier.
func Roll(expr Expression, src Source) RollResult {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}
	raw := expr.Raw
	if raw == "" {
		raw = expr.Dice().String()
	}
	return RollResult{
		Expression: raw,
		Dice:       rolled,
		Modifier:   expr.Modifier,
	}
}

// RollDice rolls a bare pool with no modifier.
//
// Postcondition: d.MinValue() <= result.Total() <= d.MaxValue().
func RollDice(d Dice, src Source) RollResult {
	return Roll(Expression{Raw: d.String(), Count: d.Count, Sides: d.Sides}, src)
}

// RollExpr parses expr and rolls it using src in a single call.
//
// Precondition: expr must be a valid dice expression string; src must be non-nil.
// Postcondition: Returns a RollResult or a parse error.
func RollExpr(expr string, src Source) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(e, src), nil
}
