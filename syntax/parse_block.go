package syntax

import (
	"strconv"

	"gcl/ast"
	"gcl/report"
	"gcl/typing"
)

// block := '{' {declaration} instructions '}' ;
func (p *Parser) parseBlock() *ast.Block {
	startTok := p.want(TOK_LBRACE)

	var decls []*ast.VarDecl
	for p.has(TOK_INT) || p.has(TOK_BOOL) || p.has(TOK_FUNCTION) {
		decls = append(decls, p.parseVarDecl())
	}

	stmts := p.parseStmtList()

	endTok := p.want(TOK_RBRACE)

	return &ast.Block{
		ASTBase: ast.NewASTBaseOver(startTok.Span, endTok.Span),
		Decls:   decls,
		Stmts:   stmts,
	}
}

// declaration := type ident_list ';' ;
// ident_list := 'IDENT' {',' 'IDENT'} ;
func (p *Parser) parseVarDecl() *ast.VarDecl {
	startSpan := p.tok.Span
	typ := p.parseTypeLabel()

	var idents []*ast.Identifier
	for {
		identTok := p.want(TOK_IDENT)
		idents = append(idents, &ast.Identifier{
			ExprBase: ast.NewExprBase(identTok.Span),
			Name:     identTok.Value,
		})

		if p.has(TOK_COMMA) {
			p.next()

			continue
		}

		break
	}

	endTok := p.want(TOK_SEMI)

	return &ast.VarDecl{
		ASTBase:  ast.NewASTBaseOver(startSpan, endTok.Span),
		DeclType: typ,
		Vars:     idents,
	}
}

// type := 'int' | 'bool' | 'function' '[' '..' 'NUMLIT' ']' ;
func (p *Parser) parseTypeLabel() typing.DataType {
	switch p.tok.Kind {
	case TOK_INT:
		p.next()
		return typing.PrimInt
	case TOK_BOOL:
		p.next()
		return typing.PrimBool
	case TOK_FUNCTION:
		p.next()
		p.want(TOK_LBRACKET)
		p.want(TOK_ELLIPSIS)

		numTok := p.want(TOK_NUMLIT)
		upper, err := strconv.Atoi(numTok.Value)
		if err != nil {
			panic(report.Raise(report.CodeArityOrRange, numTok.Span, "function bound out of range: `%s`", numTok.Value))
		}

		p.want(TOK_RBRACKET)

		return typing.FuncType{Upper: upper}
	default:
		p.reject(TOK_INT, TOK_BOOL, TOK_FUNCTION)
		return nil
	}
}
