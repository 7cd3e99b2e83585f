package syntax

import (
	"gcl/ast"
)

// instructions := instruction {';' instruction} ;
func (p *Parser) parseStmtList() []ast.ASTNode {
	stmts := []ast.ASTNode{p.parseStmt()}

	for p.has(TOK_SEMI) {
		p.next()

		stmts = append(stmts, p.parseStmt())
	}

	return stmts
}

// instruction := assignment | print_stmt | if_stmt | while_loop | 'skip' | block ;
func (p *Parser) parseStmt() ast.ASTNode {
	switch p.tok.Kind {
	case TOK_IDENT:
		return p.parseAssignment()
	case TOK_PRINT:
		{
			p.next()
			startSpan := p.lookbehind.Span

			expr := p.parseExpr()

			return &ast.PrintStmt{
				ASTBase: ast.NewASTBaseOver(startSpan, expr.Span()),
				Expr:    expr,
			}
		}
	case TOK_SKIP:
		p.next()

		return &ast.KeywordStmt{
			ASTBase: ast.NewASTBaseOn(p.lookbehind.Span),
			Kind:    p.lookbehind.Kind,
		}
	case TOK_IF:
		return p.parseIfStmt()
	case TOK_WHILE:
		return p.parseWhileLoop()
	case TOK_LBRACE:
		return p.parseBlock()
	default:
		p.reject(TOK_IDENT, TOK_PRINT, TOK_SKIP, TOK_IF, TOK_WHILE, TOK_LBRACE)
		return nil
	}
}

// assignment := 'IDENT' ':=' expr ;
func (p *Parser) parseAssignment() *ast.Assignment {
	identTok := p.want(TOK_IDENT)

	p.want(TOK_ASSIGN)

	rhsExpr := p.parseExpr()

	return &ast.Assignment{
		ASTBase: ast.NewASTBaseOver(identTok.Span, rhsExpr.Span()),
		LHSVar: &ast.Identifier{
			ExprBase: ast.NewExprBase(identTok.Span),
			Name:     identTok.Value,
		},
		RHSExpr: rhsExpr,
	}
}

// if_stmt := 'if' cond_branch {'[]' cond_branch} 'fi' ;
func (p *Parser) parseIfStmt() *ast.IfTree {
	startTok := p.want(TOK_IF)

	condBranches := []ast.CondBranch{p.parseCondBranch()}

	for p.has(TOK_GUARD) {
		p.next()

		condBranches = append(condBranches, p.parseCondBranch())
	}

	endTok := p.want(TOK_FI)

	return &ast.IfTree{
		ASTBase:      ast.NewASTBaseOver(startTok.Span, endTok.Span),
		CondBranches: condBranches,
	}
}

// cond_branch := expr '-->' instructions ;
func (p *Parser) parseCondBranch() ast.CondBranch {
	condition := p.parseExpr()

	p.want(TOK_ARROW)

	return ast.CondBranch{
		Condition: condition,
		Body:      p.parseStmtList(),
	}
}

// while_loop := 'while' expr '-->' instructions 'end' ;
func (p *Parser) parseWhileLoop() *ast.WhileLoop {
	startTok := p.want(TOK_WHILE)

	condition := p.parseExpr()

	p.want(TOK_ARROW)

	body := p.parseStmtList()

	endTok := p.want(TOK_END)

	return &ast.WhileLoop{
		ASTBase:   ast.NewASTBaseOver(startTok.Span, endTok.Span),
		Condition: condition,
		Body:      body,
	}
}
