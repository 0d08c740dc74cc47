package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Program is a sequence of expressions.
type Program struct {
	Expressions []*Expression `@@*`
}

// Expression is `[await] operand { (+ | +=) operand }`.
type Expression struct {
	Pos lexer.Position

	Await bool         `@Await?`
	Head  *Operand     `@@`
	Tail  []*Operation `@@*`
}

// Operand is an identifier with an optional `As Type` cast.
type Operand struct {
	Pos lexer.Position

	Name string `@Identifier`
	Cast string `( As @Identifier )?`
}

type Operation struct {
	Operator string   `@( Plus | PlusEq )`
	Operand  *Operand `@@`
}
