package syntax

import (
	"strings"

	"gcl/ast"
	"gcl/util"
)

// Operator kinds grouped by precedence level, loosest first.  Within a level
// binary operators associate left; the relational level is non-associative.
var (
	orOps         = []int{TOK_OR}
	andOps        = []int{TOK_AND}
	relationalOps = []int{TOK_LT, TOK_LTEQ, TOK_GT, TOK_GTEQ, TOK_EQ, TOK_NEQ}
	additiveOps   = []int{TOK_PLUS, TOK_MINUS}
	multOps       = []int{TOK_STAR}
)

// expr := or_expr {',' or_expr} ;
func (p *Parser) parseExpr() ast.ASTExpr {
	return p.parseLeftAssocChain([]int{TOK_COMMA}, func() ast.ASTExpr {
		return p.parseLeftAssocChain(orOps, func() ast.ASTExpr {
			return p.parseLeftAssocChain(andOps, p.parseRelationalExpr)
		})
	})
}

// parseLeftAssocChain parses a left-associative chain of binary operator
// applications whose operators are drawn from ops and whose operands are
// parsed by operand.
func (p *Parser) parseLeftAssocChain(ops []int, operand func() ast.ASTExpr) ast.ASTExpr {
	lhs := operand()

	for util.Contains(ops, p.tok.Kind) {
		opTok := p.tok
		p.next()

		rhs := operand()

		lhs = &ast.BinaryOp{
			ExprBase: ast.NewExprBaseOver(lhs.Span(), rhs.Span()),
			Op:       ast.Oper{Kind: opTok.Kind, Name: opTok.Value, Span: opTok.Span},
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}

	return lhs
}

// rel_expr := add_expr [rel_op add_expr] ;
// rel_op := '<' | '<=' | '>' | '>=' | '==' | '<>' ;
//
// Relational operators are non-associative: chains like `a < b < c` are
// syntax errors.
func (p *Parser) parseRelationalExpr() ast.ASTExpr {
	lhs := p.parseAddExpr()

	if !util.Contains(relationalOps, p.tok.Kind) {
		return lhs
	}

	opTok := p.tok
	p.next()

	rhs := p.parseAddExpr()

	if util.Contains(relationalOps, p.tok.Kind) {
		p.reject()
	}

	return &ast.BinaryOp{
		ExprBase: ast.NewExprBaseOver(lhs.Span(), rhs.Span()),
		Op:       ast.Oper{Kind: opTok.Kind, Name: opTok.Value, Span: opTok.Span},
		Lhs:      lhs,
		Rhs:      rhs,
	}
}

// add_expr := mul_expr {('+' | '-') mul_expr} ;
func (p *Parser) parseAddExpr() ast.ASTExpr {
	return p.parseLeftAssocChain(additiveOps, func() ast.ASTExpr {
		return p.parseLeftAssocChain(multOps, p.parseUnaryExpr)
	})
}

// unary_expr := '-' unary_expr | 'not' unary_expr | apply_expr ;
func (p *Parser) parseUnaryExpr() ast.ASTExpr {
	if p.has(TOK_MINUS) || p.has(TOK_NOT) {
		opTok := p.tok
		p.next()

		operand := p.parseUnaryExpr()

		return &ast.UnaryOp{
			ExprBase: ast.NewExprBaseOver(opTok.Span, operand.Span()),
			Op:       ast.Oper{Kind: opTok.Kind, Name: opTok.Value, Span: opTok.Span},
			Operand:  operand,
		}
	}

	return p.parseApplyExpr()
}

// apply_expr := modify_expr {'.' apply_operand} ;
// apply_operand := '-' apply_operand | 'not' apply_operand | modify_expr ;
//
// Application associates left: `f.1.2` applies `f.1` to `2`.  Its right
// operand may carry prefix operators (`f. -1` is an application to negative
// one) but never extends into another application.
func (p *Parser) parseApplyExpr() ast.ASTExpr {
	fn := p.parseModifyExpr()

	for p.has(TOK_DOT) {
		p.next()

		index := p.parseApplyOperand()

		fn = &ast.Apply{
			ExprBase: ast.NewExprBaseOver(fn.Span(), index.Span()),
			Func:     fn,
			Index:    index,
		}
	}

	return fn
}

func (p *Parser) parseApplyOperand() ast.ASTExpr {
	if p.has(TOK_MINUS) || p.has(TOK_NOT) {
		opTok := p.tok
		p.next()

		operand := p.parseApplyOperand()

		return &ast.UnaryOp{
			ExprBase: ast.NewExprBaseOver(opTok.Span, operand.Span()),
			Op:       ast.Oper{Kind: opTok.Kind, Name: opTok.Value, Span: opTok.Span},
			Operand:  operand,
		}
	}

	return p.parseModifyExpr()
}

// modify_expr := atom {'[' expr ':' expr ']' | '(' expr ':' expr ')'} ;
func (p *Parser) parseModifyExpr() ast.ASTExpr {
	fn := p.parseAtom()

	for {
		switch p.tok.Kind {
		case TOK_LBRACKET:
			p.next()

			index := p.parseExpr()
			p.want(TOK_COLON)
			value := p.parseExpr()

			endTok := p.want(TOK_RBRACKET)

			fn = &ast.FuncModify{
				ExprBase: ast.NewExprBaseOver(fn.Span(), endTok.Span),
				Func:     fn,
				Index:    index,
				Value:    value,
			}
		case TOK_LPAREN:
			p.next()

			index := p.parseExpr()
			p.want(TOK_COLON)
			value := p.parseExpr()

			endTok := p.want(TOK_RPAREN)

			fn = &ast.FuncInit{
				ExprBase: ast.NewExprBaseOver(fn.Span(), endTok.Span),
				Func:     fn,
				Index:    index,
				Value:    value,
			}
		default:
			return fn
		}
	}
}

// atom := 'NUMLIT' | 'STRINGLIT' | 'true' | 'false' | 'IDENT' | '(' expr ')' ;
func (p *Parser) parseAtom() ast.ASTExpr {
	switch p.tok.Kind {
	case TOK_NUMLIT, TOK_TRUE, TOK_FALSE:
		p.next()

		return &ast.Literal{
			ExprBase: ast.NewExprBase(p.lookbehind.Span),
			Kind:     p.lookbehind.Kind,
			Value:    p.lookbehind.Value,
		}
	case TOK_STRINGLIT:
		p.next()

		return &ast.Literal{
			ExprBase: ast.NewExprBase(p.lookbehind.Span),
			Kind:     p.lookbehind.Kind,
			Value:    decodeEscapes(p.lookbehind.Value),
		}
	case TOK_IDENT:
		p.next()

		return &ast.Identifier{
			ExprBase: ast.NewExprBase(p.lookbehind.Span),
			Name:     p.lookbehind.Value,
		}
	case TOK_LPAREN:
		p.next()

		expr := p.parseExpr()
		p.want(TOK_RPAREN)

		return expr
	default:
		p.reject(TOK_NUMLIT, TOK_STRINGLIT, TOK_TRUE, TOK_FALSE, TOK_IDENT, TOK_LPAREN)
		return nil
	}
}

// decodeEscapes decodes the escape sequences of a string literal's value.
// The lexer has already validated that only known escapes occur.
func decodeEscapes(value string) string {
	if !strings.ContainsRune(value, '\\') {
		return value
	}

	sb := strings.Builder{}
	escaped := false

	for _, c := range value {
		if escaped {
			if c == 'n' {
				sb.WriteRune('\n')
			} else {
				sb.WriteRune(c)
			}

			escaped = false
		} else if c == '\\' {
			escaped = true
		} else {
			sb.WriteRune(c)
		}
	}

	return sb.String()
}
