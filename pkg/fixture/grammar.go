package fixture

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// AST for Participle Parser

type ASTFixture struct {
	Columns []*ASTColumn `parser:"'COLUMNS' @@ (',' @@)*"`
	Rows    []*ASTRow    `parser:"@@*"`
}

type ASTColumn struct {
	Name string  `parser:"@(Ident | String | Keyword)"`
	Type *string `parser:"@('INTEGER' | 'FLOAT' | 'TEXT' | 'BLOB')?"`
}

type ASTRow struct {
	Pos lexer.Position

	Keyword string      `parser:"@'ROW'"`
	Values  []*ASTValue `parser:"(@@ (',' @@)*)?"`
}

type ASTValue struct {
	Null   bool     `parser:"  @'NULL'"`
	Float  *float64 `parser:"| @Float"`
	Int    *int64   `parser:"| @Int"`
	String *string  `parser:"| @String"`
	Blob   *string  `parser:"| @Blob"`
}

var (
	fixtureLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Blob", Pattern: `[xX]'[0-9a-fA-F]*'`},
		{Name: "Keyword", Pattern: `(?i)\b(COLUMNS|ROW|NULL|INTEGER|FLOAT|TEXT|BLOB)\b`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Float", Pattern: `[-+]?(\d+\.\d*|\.\d+)([eE][-+]?\d+)?|[-+]?\d+[eE][-+]?\d+`},
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
		{Name: "Punct", Pattern: `,`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	fixtureParser = participle.MustBuild[ASTFixture](
		participle.Lexer(fixtureLexer),
		participle.Unquote("String"),
		participle.CaseInsensitive("Keyword"),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
)
