package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/collect"
)

// operators are the supported binary operator tokens.
const operators = "+-*/"

// Expr is an arithmetic expression tree.
//
// Leaves hold numeric tokens, internal nodes hold one of the binary
// operators + - * /. Expressions are parsed from fully parenthesized infix
// input and evaluated bottom-up.
type Expr struct {
	tree Binary[string]
}

// Tree exposes the underlying binary tree, e.g. for traversal or rendering.
func (e *Expr) Tree() *Binary[string] {
	return &e.tree
}

// ParseExpression builds an expression tree from a fully parenthesized
// infix expression like "((2*5)-(7/2))". Whitespace is ignored.
// Malformed input signals ErrBadExpression.
func ParseExpression(raw string) (*Expr, error) {
	tokens, err := tokenize(raw)
	if err != nil {
		return nil, err
	}
	// Each closing parenthesis reduces the topmost [left, op, right] group
	// on the stack into a single subtree.
	var operands collect.Stack[*Binary[string]]
	var ops collect.Stack[string]
	for _, token := range tokens {
		switch {
		case strings.Contains(operators, token):
			ops.Push(token)
		case token == "(":
			// no-op, grouping is driven by the closing parenthesis
		case token == ")":
			subtree, err := reduce(&operands, &ops)
			if err != nil {
				return nil, err
			}
			operands.Push(subtree)
		default:
			operands.Push(leafExpr(token))
		}
	}
	for !ops.IsEmpty() { // unparenthesized top-level operator
		subtree, err := reduce(&operands, &ops)
		if err != nil {
			return nil, err
		}
		operands.Push(subtree)
	}
	root, err := operands.Pop()
	if err != nil || !operands.IsEmpty() {
		return nil, fmt.Errorf("%w: %q", ErrBadExpression, raw)
	}
	e := &Expr{}
	e.tree = *root
	return e, nil
}

// reduce pops [right, left] operands and one operator and combines them
// into a single operator subtree.
func reduce(operands *collect.Stack[*Binary[string]], ops *collect.Stack[string]) (*Binary[string], error) {
	right, err1 := operands.Pop()
	left, err2 := operands.Pop()
	op, err3 := ops.Pop()
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("%w: unbalanced expression", ErrBadExpression)
	}
	combined := &Binary[string]{}
	root, err := combined.AddRoot(op)
	assert(err == nil, "fresh tree accepts a root")
	if err = combined.Attach(root, left, right); err != nil {
		return nil, err
	}
	return combined, nil
}

func leafExpr(token string) *Binary[string] {
	t := &Binary[string]{}
	_, err := t.AddRoot(token)
	assert(err == nil, "fresh tree accepts a root")
	return t
}

// tokenize splits raw infix input into number, operator and parenthesis
// tokens.
func tokenize(raw string) ([]string, error) {
	symbols := operators + "()"
	var tokens []string
	mark := -1 // start of the number token in progress, -1 if none
	flush := func(end int) {
		if mark >= 0 {
			tokens = append(tokens, raw[mark:end])
			mark = -1
		}
	}
	for j := 0; j < len(raw); j++ {
		c := raw[j]
		switch {
		case strings.IndexByte(symbols, c) >= 0:
			flush(j)
			tokens = append(tokens, string(c))
		case c >= '0' && c <= '9' || c == '.':
			if mark < 0 {
				mark = j
			}
		case c == ' ' || c == '\t':
			flush(j)
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrBadExpression, c)
		}
	}
	flush(len(raw))
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrBadExpression)
	}
	return tokens, nil
}

// String returns the fully parenthesized form of the expression.
func (e *Expr) String() string {
	root, ok := e.tree.Root()
	if !ok {
		return ""
	}
	var b strings.Builder
	e.parenthesize(root, &b)
	return b.String()
}

func (e *Expr) parenthesize(p Pos[string], b *strings.Builder) {
	left, hasLeft := p.Left()
	right, hasRight := p.Right()
	if !hasLeft && !hasRight {
		b.WriteString(p.Value())
		return
	}
	b.WriteString("(")
	if hasLeft {
		e.parenthesize(left, b)
	}
	b.WriteString(p.Value())
	if hasRight {
		e.parenthesize(right, b)
	}
	b.WriteString(")")
}

// Eval computes the numeric value of the expression.
//
// Malformed trees, unknown operators and division by zero signal
// ErrBadExpression.
func (e *Expr) Eval() (float64, error) {
	root, ok := e.tree.Root()
	if !ok {
		return 0, fmt.Errorf("%w: empty expression", ErrBadExpression)
	}
	return e.eval(root)
}

func (e *Expr) eval(p Pos[string]) (float64, error) {
	left, hasLeft := p.Left()
	right, hasRight := p.Right()
	if !hasLeft && !hasRight { // leaf: a numeric token
		v, err := strconv.ParseFloat(p.Value(), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: not a number: %q", ErrBadExpression, p.Value())
		}
		return v, nil
	}
	if !hasLeft || !hasRight {
		return 0, fmt.Errorf("%w: operator %q needs two operands", ErrBadExpression, p.Value())
	}
	lv, err := e.eval(left)
	if err != nil {
		return 0, err
	}
	rv, err := e.eval(right)
	if err != nil {
		return 0, err
	}
	switch p.Value() {
	case "+":
		return lv + rv, nil
	case "-":
		return lv - rv, nil
	case "*":
		return lv * rv, nil
	case "/":
		if rv == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrBadExpression)
		}
		return lv / rv, nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrBadExpression, p.Value())
}
