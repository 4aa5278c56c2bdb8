package tree

import (
	"errors"
	"slices"
	"testing"
)

func TestExprParseAndEval(t *testing.T) {
	e, err := ParseExpression("((2*5)-(7/2))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := e.Eval()
	if err != nil || v != 6.5 {
		t.Errorf("expected 6.5, got (%v, %v)", v, err)
	}
}

func TestExprString(t *testing.T) {
	e, err := ParseExpression(" ( (2 * 5) - (7 / 2) ) ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.String(); got != "((2*5)-(7/2))" {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestExprTreeShape(t *testing.T) {
	e, err := ParseExpression("((1+2)*3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := slices.Collect(e.Tree().PostOrder())
	if !slices.Equal(got, []string{"1", "2", "+", "3", "*"}) {
		t.Errorf("unexpected post-order %v", got)
	}
}

func TestExprTopLevelOperator(t *testing.T) {
	e, err := ParseExpression("7 + 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, err := e.Eval(); err != nil || v != 9 {
		t.Errorf("expected 9, got (%v, %v)", v, err)
	}
}

func TestExprSingleNumber(t *testing.T) {
	e, err := ParseExpression("3.25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, err := e.Eval(); err != nil || v != 3.25 {
		t.Errorf("expected 3.25, got (%v, %v)", v, err)
	}
}

func TestExprMalformed(t *testing.T) {
	for _, raw := range []string{"", "(2+)", "2 3", "(2%3)", "+3"} {
		if _, err := ParseExpression(raw); !errors.Is(err, ErrBadExpression) {
			t.Errorf("ParseExpression(%q): expected ErrBadExpression, got %v", raw, err)
		}
	}
}

func TestExprDivisionByZero(t *testing.T) {
	e, err := ParseExpression("(1/0)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.Eval(); !errors.Is(err, ErrBadExpression) {
		t.Errorf("expected ErrBadExpression, got %v", err)
	}
}

func TestExprNonNumericLeaf(t *testing.T) {
	e := &Expr{}
	root, _ := e.Tree().AddRoot("+")
	e.Tree().AddLeft(root, "one")
	e.Tree().AddRight(root, "2")
	if _, err := e.Eval(); !errors.Is(err, ErrBadExpression) {
		t.Errorf("expected ErrBadExpression, got %v", err)
	}
}
