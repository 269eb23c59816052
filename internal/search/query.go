// Package search implements the boolean query engine used to run free-form
// recruiter-style queries over stored resume text. Queries support bare
// words, double-quoted phrases, AND/OR/NOT, and parenthesized grouping; the
// engine compiles the infix form to postfix and evaluates it with a boolean
// stack against literal substring membership.
package search

import (
	"regexp"
	"strings"
)

// TokenType identifies a query token.
type TokenType string

// Token types. Operator keywords are normalized to uppercase during
// tokenization regardless of input case.
const (
	TokenTerm   TokenType = "TERM"
	TokenAnd    TokenType = "AND"
	TokenOr     TokenType = "OR"
	TokenNot    TokenType = "NOT"
	TokenLParen TokenType = "("
	TokenRParen TokenType = ")"
)

// Token is one lexical unit of a boolean query.
type Token struct {
	Value string
	Type  TokenType
}

// tokenPattern recognizes parentheses, operator keywords, quoted phrases and
// bare words. Anything else in the query is ignored, not an error.
var tokenPattern = regexp.MustCompile(`(?i)\(|\)|\bAND\b|\bOR\b|\bNOT\b|"[^"]+"|\w+`)

// precedence orders the operators: NOT binds tightest, OR loosest.
var precedence = map[TokenType]int{
	TokenNot: 3,
	TokenAnd: 2,
	TokenOr:  1,
}

// Tokenize scans the query left to right into a flat token sequence.
// Operator keywords match case-insensitively and are normalized to
// uppercase; quoted phrases keep their content verbatim, quotes stripped.
func Tokenize(query string) []Token {
	var tokens []Token
	for _, match := range tokenPattern.FindAllString(query, -1) {
		switch upper := strings.ToUpper(match); upper {
		case "AND":
			tokens = append(tokens, Token{Value: upper, Type: TokenAnd})
		case "OR":
			tokens = append(tokens, Token{Value: upper, Type: TokenOr})
		case "NOT":
			tokens = append(tokens, Token{Value: upper, Type: TokenNot})
		case "(":
			tokens = append(tokens, Token{Value: "(", Type: TokenLParen})
		case ")":
			tokens = append(tokens, Token{Value: ")", Type: TokenRParen})
		default:
			tokens = append(tokens, Token{Value: strings.Trim(match, `"`), Type: TokenTerm})
		}
	}
	return tokens
}

// ToPostfix converts an infix token sequence to postfix (reverse-Polish)
// order via the shunting-yard algorithm. Operators pop while the stack top
// has precedence greater than or equal to theirs, so AND and OR associate
// left. Unbalanced parentheses are tolerated silently: an unmatched ")"
// pops to the nearest "(" or the stack bottom, and any "(" left over at end
// of input is discarded rather than emitted.
func ToPostfix(tokens []Token) []Token {
	var output []Token
	var stack []Token

	for _, token := range tokens {
		switch token.Type {
		case TokenTerm:
			output = append(output, token)
		case TokenAnd, TokenOr, TokenNot:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if prec, ok := precedence[top.Type]; !ok || prec < precedence[token.Type] {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, token)
		case TokenLParen:
			stack = append(stack, token)
		case TokenRParen:
			for len(stack) > 0 && stack[len(stack)-1].Type != TokenLParen {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1] // drop the "("
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Type == TokenLParen {
			continue
		}
		output = append(output, top)
	}
	return output
}

// EvaluatePostfix walks a postfix token sequence with a boolean stack
// against the document text. A term pushes its case-insensitive substring
// membership; NOT negates the top; AND/OR combine the top two. Stack
// underflow is a documented no-op, and an empty final stack evaluates to
// false, so malformed queries never error.
func EvaluatePostfix(postfix []Token, text string) bool {
	var stack []bool
	textLower := strings.ToLower(text)

	for _, token := range postfix {
		switch token.Type {
		case TokenTerm:
			stack = append(stack, strings.Contains(textLower, strings.ToLower(token.Value)))
		case TokenNot:
			if len(stack) > 0 {
				stack[len(stack)-1] = !stack[len(stack)-1]
			}
		case TokenAnd, TokenOr:
			if len(stack) < 2 {
				continue
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			if token.Type == TokenAnd {
				stack = append(stack, left && right)
			} else {
				stack = append(stack, left || right)
			}
		}
	}

	if len(stack) == 0 {
		return false
	}
	return stack[len(stack)-1]
}

// Query is a compiled boolean query ready for repeated evaluation.
type Query struct {
	postfix []Token
}

// Compile tokenizes and parses a query string once so it can be evaluated
// across a corpus without re-parsing.
func Compile(query string) Query {
	return Query{postfix: ToPostfix(Tokenize(query))}
}

// Matches evaluates the compiled query against one document's text.
func (q Query) Matches(text string) bool {
	return EvaluatePostfix(q.postfix, text)
}
