package ast

import (
	"strings"
)

// TermString returns the surface rendering of a term. Application is shown by
// juxtaposition; its left operand is parenthesized when it is an abstraction
// and its right operand whenever it is not a variable.
func TermString(t Term) string {
	var sb strings.Builder
	termString(&sb, t)
	return sb.String()
}

func termString(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case *Var:
		sb.WriteString(t.Name)

	case *App:
		if _, abs := t.Func.(*Abs); abs {
			sb.WriteByte('(')
			termString(sb, t.Func)
			sb.WriteByte(')')
		} else {
			termString(sb, t.Func)
		}
		sb.WriteByte(' ')
		if _, simple := t.Arg.(*Var); simple {
			termString(sb, t.Arg)
		} else {
			sb.WriteByte('(')
			termString(sb, t.Arg)
			sb.WriteByte(')')
		}

	case *Abs:
		sb.WriteString("λ")
		sb.WriteString(t.Var)
		sb.WriteString(". ")
		termString(sb, t.Body)
	}
}
