package ast

import (
	"fmt"
	"strings"
)

// Dump renders the program as an indented S-expression-ish tree, used
// by the `runa parse` CLI command and by the parser's determinism
// test. It is diagnostic only; nothing in the pipeline parses it back.
func (p *Program) Dump() string {
	var sb strings.Builder
	for _, item := range p.Items {
		dumpItem(&sb, item, 0)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpItem(sb *strings.Builder, item Item, depth int) {
	switch it := item.(type) {
	case *FuncDecl:
		indent(sb, depth)
		fmt.Fprintf(sb, "Func %s(%s)\n", it.Name, strings.Join(it.Params, ", "))
		dumpBlock(sb, it.Body, depth+1)
	case *ClassDecl:
		indent(sb, depth)
		fmt.Fprintf(sb, "Class %s\n", it.Name)
		for _, m := range it.Methods {
			dumpItem(sb, m, depth+1)
		}
	case *LetDecl:
		indent(sb, depth)
		fmt.Fprintf(sb, "Let %s = %s\n", it.Name, dumpExpr(it.Init))
	}
}

func dumpBlock(sb *strings.Builder, b *Block, depth int) {
	for _, s := range b.Stmts {
		dumpStmt(sb, s, depth)
	}
}

func dumpStmt(sb *strings.Builder, s Stmt, depth int) {
	indent(sb, depth)
	switch st := s.(type) {
	case *LetStmt:
		fmt.Fprintf(sb, "Let %s = %s\n", st.Decl.Name, dumpExpr(st.Decl.Init))
	case *AssignStmt:
		fmt.Fprintf(sb, "Assign %s = %s\n", st.Name, dumpExpr(st.Value))
	case *ReturnStmt:
		if st.Value == nil {
			sb.WriteString("Return\n")
		} else {
			fmt.Fprintf(sb, "Return %s\n", dumpExpr(st.Value))
		}
	case *IfStmt:
		fmt.Fprintf(sb, "If %s\n", dumpExpr(st.Cond))
		dumpBlock(sb, st.Then, depth+1)
		if st.Else != nil {
			indent(sb, depth)
			sb.WriteString("Else\n")
			dumpBlock(sb, st.Else, depth+1)
		}
	case *WhileStmt:
		fmt.Fprintf(sb, "While %s\n", dumpExpr(st.Cond))
		dumpBlock(sb, st.Body, depth+1)
	case *ForInStmt:
		fmt.Fprintf(sb, "ForIn %s in %s\n", st.Var, dumpExpr(st.Iter))
		dumpBlock(sb, st.Body, depth+1)
	case *BreakStmt:
		sb.WriteString("Break\n")
	case *ContinueStmt:
		sb.WriteString("Continue\n")
	case *ExprStmt:
		fmt.Fprintf(sb, "ExprStmt %s\n", dumpExpr(st.Expr))
	}
}

func dumpExpr(e Expr) string {
	switch ex := e.(type) {
	case *Ident:
		return ex.Name
	case *IntLit:
		return fmt.Sprintf("%d", ex.Value)
	case *StrLit:
		return fmt.Sprintf("%q", ex.Value)
	case *BoolLit:
		return fmt.Sprintf("%t", ex.Value)
	case *ArrayLit:
		parts := make([]string, len(ex.Elements))
		for i, el := range ex.Elements {
			parts[i] = dumpExpr(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *IndexExpr:
		return fmt.Sprintf("%s[%s]", dumpExpr(ex.Target), dumpExpr(ex.Index))
	case *CallExpr:
		args := make([]string, len(ex.Args))
		for i, a := range ex.Args {
			args[i] = dumpExpr(a)
		}
		return fmt.Sprintf("%s(%s)", dumpExpr(ex.Callee), strings.Join(args, ", "))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", dumpExpr(ex.Left), ex.Op, dumpExpr(ex.Right))
	case *GroupExpr:
		return fmt.Sprintf("(%s)", dumpExpr(ex.Inner))
	default:
		return "<?>"
	}
}
