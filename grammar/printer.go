package grammar

import "strings"

func (p *Program) String() string {
	var b strings.Builder
	for _, e := range p.Expressions {
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (e *Expression) String() string {
	var b strings.Builder
	if e.Await {
		b.WriteString("await ")
	}
	b.WriteString(e.Head.String())
	for _, op := range e.Tail {
		b.WriteString(" ")
		b.WriteString(op.Operator)
		b.WriteString(" ")
		b.WriteString(op.Operand.String())
	}
	return b.String()
}

func (o *Operand) String() string {
	if o.Cast != "" {
		return o.Name + " As " + o.Cast
	}
	return o.Name
}
