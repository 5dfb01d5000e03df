// Package parser implements a recursive-descent parser over a
// pre-lexed token slice. Every grammar production has a matching
// parse* method; expression precedence is
// implemented as the classic cascade of mutually-recursive methods
// (Equality -> Comparison -> Term -> Factor -> Postfix -> Primary)
// rather than a Pratt table, since the grammar has no user-definable
// operators to justify one.
package parser

import (
	"github.com/gubiczam/runa/internal/ast"
	"github.com/gubiczam/runa/internal/errors"
	"github.com/gubiczam/runa/internal/lexer"
)

// Parser consumes a token slice produced by internal/lexer and builds
// an *ast.Program.
type Parser struct {
	tokens []lexer.Token
	pos    int
	source string
}

// New creates a Parser over tokens. source is only used to render
// error context and may be empty.
func New(tokens []lexer.Token, source string) *Parser {
	return &Parser{tokens: tokens, source: source}
}

// Parse parses a complete program, returning a *errors.CompilerError
// (Kind Parse) on the first syntax error.
func Parse(tokens []lexer.Token, source string) (*ast.Program, error) {
	return New(tokens, source).ParseProgram()
}

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekN(n int) lexer.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.tokens[idx]
}

func (p *Parser) is(k lexer.Kind) bool { return p.peek().Kind == k }

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) eat(k lexer.Kind) bool {
	if p.is(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(k lexer.Kind) (lexer.Token, error) {
	if p.is(k) {
		return p.advance(), nil
	}
	tok := p.peek()
	return lexer.Token{}, p.errorf(tok, "expected %s, got %s", k, tok)
}

func (p *Parser) expectIdent() (string, error) {
	tok := p.peek()
	if tok.Kind != lexer.IDENT {
		return "", p.errorf(tok, "expected identifier, got %s", tok)
	}
	p.advance()
	return tok.Lexeme, nil
}

func (p *Parser) errorf(tok lexer.Token, format string, args ...any) error {
	return errors.New(errors.Parse, tok.Pos, p.source, format, args...)
}

// ParseProgram parses { Item } Eof.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.is(lexer.EOF) {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		prog.Items = append(prog.Items, item)
	}
	return prog, nil
}

// parseItem handles Item := Class | Func | Let ";" and rejects any
// other top-level statement.
func (p *Parser) parseItem() (ast.Item, error) {
	switch {
	case p.is(lexer.KwClass):
		return p.parseClass()
	case p.is(lexer.KwFn):
		return p.parseFunc()
	case p.is(lexer.KwLet):
		decl, err := p.parseLetDecl()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Semicolon); err != nil {
			return nil, err
		}
		return decl, nil
	default:
		tok := p.peek()
		return nil, p.errorf(tok, "expected class, fn, or let at top level, got %s", tok)
	}
}

func (p *Parser) parseClass() (*ast.ClassDecl, error) {
	if _, err := p.expect(lexer.KwClass); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	var methods []*ast.FuncDecl
	for !p.is(lexer.RBrace) {
		if _, err := p.expect(lexer.KwFn); err != nil {
			return nil, err
		}
		m, err := p.parseFuncRest()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}
	return &ast.ClassDecl{Name: name, Methods: methods}, nil
}

func (p *Parser) parseFunc() (*ast.FuncDecl, error) {
	if _, err := p.expect(lexer.KwFn); err != nil {
		return nil, err
	}
	return p.parseFuncRest()
}

func (p *Parser) parseFuncRest() (*ast.FuncDecl, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	var params []string
	if !p.is(lexer.RParen) {
		for {
			param, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if p.eat(lexer.Comma) {
				continue
			}
			break
		}
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	block := &ast.Block{}
	for !p.is(lexer.RBrace) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseLetDecl() (*ast.LetDecl, error) {
	if _, err := p.expect(lexer.KwLet); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Assign); err != nil {
		return nil, err
	}
	init, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.LetDecl{Name: name, Init: init}, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch {
	case p.is(lexer.KwLet):
		decl, err := p.parseLetDecl()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Semicolon); err != nil {
			return nil, err
		}
		return &ast.LetStmt{Decl: decl}, nil

	case p.is(lexer.KwReturn):
		p.advance()
		if p.eat(lexer.Semicolon) {
			return &ast.ReturnStmt{}, nil
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Semicolon); err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Value: val}, nil

	case p.is(lexer.KwIf):
		return p.parseIf()

	case p.is(lexer.KwWhile):
		return p.parseWhile()

	case p.is(lexer.KwFor):
		return p.parseForIn()

	case p.is(lexer.KwBreak):
		p.advance()
		if _, err := p.expect(lexer.Semicolon); err != nil {
			return nil, err
		}
		return &ast.BreakStmt{}, nil

	case p.is(lexer.KwContinue):
		p.advance()
		if _, err := p.expect(lexer.Semicolon); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{}, nil

	case p.is(lexer.IDENT) && p.peekN(1).Kind == lexer.Assign:
		name := p.advance().Lexeme
		p.advance() // '='
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Semicolon); err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Name: name, Value: value}, nil

	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Semicolon); err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Expr: expr}, nil
	}
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	p.advance()
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock *ast.Block
	if p.eat(lexer.KwElse) {
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBlock}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	p.advance()
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body}, nil
}

func (p *Parser) parseForIn() (ast.Stmt, error) {
	p.advance()
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KwIn); err != nil {
		return nil, err
	}
	iter, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForInStmt{Var: name, Iter: iter, Body: body}, nil
}

// ---- Expressions ----

func (p *Parser) parseExpr() (ast.Expr, error) { return p.parseEquality() }

func (p *Parser) parseEquality() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinOp
		switch {
		case p.eat(lexer.Eq):
			op = ast.OpEq
		case p.eat(lexer.Ne):
			op = ast.OpNe
		default:
			return left, nil
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinOp
		switch {
		case p.eat(lexer.Lt):
			op = ast.OpLt
		case p.eat(lexer.Le):
			op = ast.OpLe
		case p.eat(lexer.Gt):
			op = ast.OpGt
		case p.eat(lexer.Ge):
			op = ast.OpGe
		default:
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinOp
		switch {
		case p.eat(lexer.Plus):
			op = ast.Add
		case p.eat(lexer.Minus):
			op = ast.Sub
		default:
			return left, nil
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinOp
		switch {
		case p.eat(lexer.Star):
			op = ast.Mul
		case p.eat(lexer.Slash):
			op = ast.Div
		default:
			return left, nil
		}
		right, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.eat(lexer.LParen):
			var args []ast.Expr
			if !p.is(lexer.RParen) {
				for {
					arg, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if p.eat(lexer.Comma) {
						continue
					}
					break
				}
			}
			if _, err := p.expect(lexer.RParen); err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{Callee: expr, Args: args}

		case p.eat(lexer.LBracket):
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBracket); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{Target: expr, Index: idx}

		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.IDENT:
		p.advance()
		return &ast.Ident{Name: tok.Lexeme}, nil
	case lexer.INT:
		p.advance()
		return &ast.IntLit{Value: tok.IntValue}, nil
	case lexer.STRING:
		p.advance()
		return &ast.StrLit{Value: tok.StrValue}, nil
	case lexer.KwTrue:
		p.advance()
		return &ast.BoolLit{Value: true}, nil
	case lexer.KwFalse:
		p.advance()
		return &ast.BoolLit{Value: false}, nil
	case lexer.LParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return &ast.GroupExpr{Inner: inner}, nil
	case lexer.LBracket:
		p.advance()
		var elems []ast.Expr
		if !p.is(lexer.RBracket) {
			for {
				el, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				elems = append(elems, el)
				if p.eat(lexer.Comma) {
					continue
				}
				break
			}
		}
		if _, err := p.expect(lexer.RBracket); err != nil {
			return nil, err
		}
		return &ast.ArrayLit{Elements: elems}, nil
	default:
		return nil, p.errorf(tok, "expected a primary expression, got %s", tok)
	}
}
