package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_OperatorsNormalizedToUppercase(t *testing.T) {
	tokens := Tokenize("scrum and jira or not agile")

	types := make([]TokenType, 0, len(tokens))
	for _, token := range tokens {
		types = append(types, token.Type)
	}
	assert.Equal(t, []TokenType{
		TokenTerm, TokenAnd, TokenTerm, TokenOr, TokenNot, TokenTerm,
	}, types)
}

func TestTokenize_QuotedPhraseKeptVerbatim(t *testing.T) {
	tokens := Tokenize(`"project management" AND jira`)

	assert.Equal(t, Token{Value: "project management", Type: TokenTerm}, tokens[0])
}

func TestTokenize_Parentheses(t *testing.T) {
	tokens := Tokenize("(a OR b)")

	assert.Equal(t, TokenLParen, tokens[0].Type)
	assert.Equal(t, TokenRParen, tokens[len(tokens)-1].Type)
}

func TestTokenize_UnrecognizedInputIgnored(t *testing.T) {
	tokens := Tokenize("!!! ???")

	assert.Empty(t, tokens)
}

func TestTokenize_EmptyQuery(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}

func TestToPostfix_AndBindsTighterThanOr(t *testing.T) {
	postfix := ToPostfix(Tokenize("a OR b AND c"))

	assert.Equal(t, []string{"a", "b", "c", "AND", "OR"}, values(postfix))
}

func TestToPostfix_ParenthesesOverridePrecedence(t *testing.T) {
	postfix := ToPostfix(Tokenize("(a OR b) AND c"))

	assert.Equal(t, []string{"a", "b", "OR", "c", "AND"}, values(postfix))
}

func TestToPostfix_LeftAssociative(t *testing.T) {
	postfix := ToPostfix(Tokenize("a AND b AND c"))

	assert.Equal(t, []string{"a", "b", "AND", "c", "AND"}, values(postfix))
}

func TestToPostfix_UnmatchedCloseParenTolerated(t *testing.T) {
	postfix := ToPostfix(Tokenize("a OR b)"))

	assert.Equal(t, []string{"a", "b", "OR"}, values(postfix))
}

func TestToPostfix_LeftoverOpenParenDiscarded(t *testing.T) {
	postfix := ToPostfix(Tokenize("(a OR b"))

	assert.Equal(t, []string{"a", "b", "OR"}, values(postfix))
}

func TestEvaluatePostfix_SubstringIsCaseInsensitive(t *testing.T) {
	q := Compile("scrum")

	assert.True(t, q.Matches("Certified Scrum Master"))
	assert.False(t, q.Matches("Kanban only"))
}

func TestEvaluatePostfix_NotWithEmptyStackIsNoop(t *testing.T) {
	assert.False(t, EvaluatePostfix([]Token{{Value: "NOT", Type: TokenNot}}, "text"))
}

func TestEvaluatePostfix_BinaryUnderflowIsNoop(t *testing.T) {
	postfix := []Token{{Value: "a", Type: TokenTerm}, {Value: "AND", Type: TokenAnd}}

	// AND with one operand leaves the stack untouched.
	assert.True(t, EvaluatePostfix(postfix, "has a in it"))
}

func TestEvaluatePostfix_EmptyQueryIsFalse(t *testing.T) {
	assert.False(t, Compile("").Matches("anything"))
}

// The precedence table makes NOT bind tighter than AND, so the trailing
// "NOT internship" negates only the internship term.
func TestQuery_PrecedenceEndToEnd(t *testing.T) {
	q := Compile(`(scrum OR "project management") AND jira NOT internship`)

	assert.False(t, q.Matches("Scrum master, Jira expert, paid internship"))
	assert.True(t, q.Matches("Scrum master, Jira expert"))
}

func TestQuery_QuotedPhraseMatching(t *testing.T) {
	q := Compile(`"project management"`)

	assert.True(t, q.Matches("strong Project Management background"))
	assert.False(t, q.Matches("project and management, separately"))
}

func values(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, token.Value)
	}
	return out
}
