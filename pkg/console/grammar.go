package console

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// AST for Participle Parser

type ASTCommand struct {
	Move   *ASTMove `parser:"  @@"`
	Read   *ASTRead `parser:"| @@"`
	Use    *ASTUse  `parser:"| @@"`
	Simple *string  `parser:"| @('FIRST' | 'LAST' | 'NEXT' | 'PREV' | 'ROW' | 'COUNT' | 'COLUMNS' | 'POSITION' | 'CLOSE' | 'TABLES' | 'HELP')"`
}

type ASTMove struct {
	Verb   string `parser:"@('MOVE' | 'POS')"`
	Offset int    `parser:"@Int"`
}

type ASTRead struct {
	Verb   string     `parser:"@('GET' | 'TYPE' | 'NULL')"`
	Column *ASTColumn `parser:"@@"`
}

type ASTUse struct {
	Table string `parser:"'USE' @(Ident | String | Keyword)"`
}

type ASTColumn struct {
	Index *int    `parser:"  @Int"`
	Name  *string `parser:"| @(Ident | String | Keyword)"`
}

var (
	commandLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Keyword", Pattern: `(?i)\b(FIRST|LAST|NEXT|PREV|MOVE|POS|GET|TYPE|NULL|ROW|COUNT|COLUMNS|POSITION|CLOSE|USE|TABLES|HELP)\b`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "String", Pattern: `'[^']*'|"[^"]*"`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	commandParser = participle.MustBuild[ASTCommand](
		participle.Lexer(commandLexer),
		participle.Unquote("String"),
		participle.CaseInsensitive("Keyword"),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)

// ParseCommand parses a single console command line.
func ParseCommand(line string) (*ASTCommand, error) {
	return commandParser.ParseString("", line)
}
