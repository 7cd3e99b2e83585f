package syntax

import (
	"fmt"
	"strings"

	"gcl/ast"
	"gcl/report"
)

// DumpTree returns the labeled tree form of an AST.  Each node prints on its
// own line prefixed by one dash per nesting level.  Expression labels carry
// the inferred type when one has been set.
func DumpTree(node ast.ASTNode) string {
	td := treeDumper{}
	td.dumpNode(node, 0)
	return td.sb.String()
}

type treeDumper struct {
	sb strings.Builder
}

func (td *treeDumper) line(indent int, label string) {
	td.sb.WriteString(strings.Repeat("-", indent))
	td.sb.WriteString(label)
	td.sb.WriteRune('\n')
}

func (td *treeDumper) dumpNode(node ast.ASTNode, indent int) {
	switch v := node.(type) {
	case *ast.Block:
		td.line(indent, "Block")

		for _, decl := range v.Decls {
			td.dumpNode(decl, indent+1)
		}

		for _, stmt := range v.Stmts {
			td.dumpNode(stmt, indent+1)
		}
	case *ast.VarDecl:
		td.line(indent, "Declare")

		names := make([]string, len(v.Vars))
		for i, ident := range v.Vars {
			names[i] = ident.Name
		}

		td.line(indent+1, fmt.Sprintf("%s : %s", strings.Join(names, ", "), v.DeclType.Repr()))
	case *ast.Assignment:
		td.line(indent, "Assign")
		td.dumpExpr(v.LHSVar, indent+1)
		td.dumpExpr(v.RHSExpr, indent+1)
	case *ast.PrintStmt:
		td.line(indent, "Print")
		td.dumpExpr(v.Expr, indent+1)
	case *ast.KeywordStmt:
		td.line(indent, "Skip")
	case *ast.IfTree:
		td.line(indent, "If")

		for _, branch := range v.CondBranches {
			td.line(indent+1, "Guard")
			td.dumpExpr(branch.Condition, indent+2)
			td.line(indent+2, "Then")

			for _, stmt := range branch.Body {
				td.dumpNode(stmt, indent+3)
			}
		}
	case *ast.WhileLoop:
		td.line(indent, "While")
		td.dumpExpr(v.Condition, indent+1)
		td.line(indent+1, "Then")

		for _, stmt := range v.Body {
			td.dumpNode(stmt, indent+2)
		}
	case ast.ASTExpr:
		td.dumpExpr(v, indent)
	default:
		report.ReportICE("unknown AST node: %T", node)
	}
}

func (td *treeDumper) dumpExpr(expr ast.ASTExpr, indent int) {
	switch v := expr.(type) {
	case *ast.BinaryOp:
		td.line(indent, td.typed(v, "BinaryOp: "+v.Op.Name))
		td.dumpExpr(v.Lhs, indent+1)
		td.dumpExpr(v.Rhs, indent+1)
	case *ast.UnaryOp:
		td.line(indent, td.typed(v, "UnaryOp: "+v.Op.Name))
		td.dumpExpr(v.Operand, indent+1)
	case *ast.Apply:
		td.line(indent, td.typed(v, "Apply"))
		td.dumpExpr(v.Func, indent+1)
		td.dumpExpr(v.Index, indent+1)
	case *ast.FuncModify:
		td.line(indent, td.typed(v, "ModifyFunction"))
		td.dumpExpr(v.Func, indent+1)
		td.dumpExpr(v.Index, indent+1)
		td.dumpExpr(v.Value, indent+1)
	case *ast.FuncInit:
		td.line(indent, td.typed(v, "WriteFunction"))
		td.dumpExpr(v.Func, indent+1)
		td.dumpExpr(v.Index, indent+1)
		td.dumpExpr(v.Value, indent+1)
	case *ast.Identifier:
		td.line(indent, td.typed(v, "Ident: "+v.Name))
	case *ast.Literal:
		if v.Kind == TOK_STRINGLIT {
			td.line(indent, td.typed(v, fmt.Sprintf("String: %q", v.Value)))
		} else {
			td.line(indent, td.typed(v, "Literal: "+v.Value))
		}
	default:
		report.ReportICE("unknown expression node: %T", expr)
	}
}

// typed suffixes a label with the expression's inferred type when one is set.
func (td *treeDumper) typed(expr ast.ASTExpr, label string) string {
	if typ := expr.Type(); typ != nil {
		return label + " | type: " + typ.Repr()
	}

	return label
}

// -----------------------------------------------------------------------------

// FormatSource renders an AST back to parseable source text.  Compound
// expressions are fully parenthesized so that re-parsing the result yields a
// structurally identical tree.
func FormatSource(node ast.ASTNode) string {
	sf := sourceFormatter{}
	sf.formatNode(node, 0)
	return sf.sb.String()
}

type sourceFormatter struct {
	sb strings.Builder
}

func (sf *sourceFormatter) indent(level int) {
	sf.sb.WriteString(strings.Repeat("    ", level))
}

func (sf *sourceFormatter) formatNode(node ast.ASTNode, level int) {
	switch v := node.(type) {
	case *ast.Block:
		sf.sb.WriteString("{\n")

		for _, decl := range v.Decls {
			sf.formatNode(decl, level+1)
		}

		sf.formatStmts(v.Stmts, level+1)

		sf.indent(level)
		sf.sb.WriteRune('}')
	case *ast.VarDecl:
		sf.indent(level)
		sf.sb.WriteString(v.DeclType.Repr())
		sf.sb.WriteRune(' ')

		for i, ident := range v.Vars {
			if i > 0 {
				sf.sb.WriteString(", ")
			}

			sf.sb.WriteString(ident.Name)
		}

		sf.sb.WriteString(";\n")
	case *ast.Assignment:
		sf.sb.WriteString(v.LHSVar.Name)
		sf.sb.WriteString(" := ")
		sf.formatExpr(v.RHSExpr)
	case *ast.PrintStmt:
		sf.sb.WriteString("print ")
		sf.formatExpr(v.Expr)
	case *ast.KeywordStmt:
		sf.sb.WriteString("skip")
	case *ast.IfTree:
		sf.sb.WriteString("if ")

		for i, branch := range v.CondBranches {
			if i > 0 {
				sf.indent(level)
				sf.sb.WriteString("[] ")
			}

			sf.formatExpr(branch.Condition)
			sf.sb.WriteString(" -->\n")
			sf.formatStmts(branch.Body, level+1)
		}

		sf.indent(level)
		sf.sb.WriteString("fi")
	case *ast.WhileLoop:
		sf.sb.WriteString("while ")
		sf.formatExpr(v.Condition)
		sf.sb.WriteString(" -->\n")
		sf.formatStmts(v.Body, level+1)
		sf.indent(level)
		sf.sb.WriteString("end")
	default:
		report.ReportICE("unknown AST node: %T", node)
	}
}

// formatStmts renders an instruction sequence, one instruction per line,
// separated by semicolons.
func (sf *sourceFormatter) formatStmts(stmts []ast.ASTNode, level int) {
	for i, stmt := range stmts {
		sf.indent(level)
		sf.formatNode(stmt, level)

		if i < len(stmts)-1 {
			sf.sb.WriteRune(';')
		}

		sf.sb.WriteRune('\n')
	}
}

func (sf *sourceFormatter) formatExpr(expr ast.ASTExpr) {
	switch v := expr.(type) {
	case *ast.BinaryOp:
		sf.sb.WriteRune('(')
		sf.formatExpr(v.Lhs)

		if v.Op.Kind == TOK_COMMA {
			sf.sb.WriteString(", ")
		} else {
			sf.sb.WriteRune(' ')
			sf.sb.WriteString(v.Op.Name)
			sf.sb.WriteRune(' ')
		}

		sf.formatExpr(v.Rhs)
		sf.sb.WriteRune(')')
	case *ast.UnaryOp:
		sf.sb.WriteRune('(')
		sf.sb.WriteString(v.Op.Name)

		if v.Op.Kind == TOK_NOT {
			sf.sb.WriteRune(' ')
		}

		sf.formatExpr(v.Operand)
		sf.sb.WriteRune(')')
	case *ast.Apply:
		sf.sb.WriteRune('(')
		sf.formatExpr(v.Func)
		sf.sb.WriteRune('.')
		sf.formatExpr(v.Index)
		sf.sb.WriteRune(')')
	case *ast.FuncModify:
		sf.sb.WriteRune('(')
		sf.formatExpr(v.Func)
		sf.sb.WriteRune('[')
		sf.formatExpr(v.Index)
		sf.sb.WriteRune(':')
		sf.formatExpr(v.Value)
		sf.sb.WriteString("])")
	case *ast.FuncInit:
		sf.sb.WriteRune('(')
		sf.formatExpr(v.Func)
		sf.sb.WriteRune('(')
		sf.formatExpr(v.Index)
		sf.sb.WriteRune(':')
		sf.formatExpr(v.Value)
		sf.sb.WriteString("))")
	case *ast.Identifier:
		sf.sb.WriteString(v.Name)
	case *ast.Literal:
		if v.Kind == TOK_STRINGLIT {
			sf.sb.WriteRune('"')
			sf.sb.WriteString(encodeEscapes(v.Value))
			sf.sb.WriteRune('"')
		} else {
			sf.sb.WriteString(v.Value)
		}
	default:
		report.ReportICE("unknown expression node: %T", expr)
	}
}

// encodeEscapes re-encodes the escapable runes of a string literal's decoded
// value.  It is the inverse of decodeEscapes.
func encodeEscapes(value string) string {
	sb := strings.Builder{}

	for _, c := range value {
		switch c {
		case '\n':
			sb.WriteString(`\n`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(c)
		}
	}

	return sb.String()
}
