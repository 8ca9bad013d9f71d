package kes

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func format(t *testing.T, program []Stmt, interner *Interner) string {
	t.Helper()
	var out strings.Builder
	require.NoError(t, Format(&out, program, interner))
	return out.String()
}

func TestFormatStatements(t *testing.T) {
	testCases := []struct {
		src  string
		want string
	}{
		{"종료;", "종료;\n"},
		{"$x=1;", "$x = 1;\n"},
		{"@@1;", "@@ 1;\n"},
		{"@'a'$b;", "@ 'a' $b;\n"},
		{"@!'done';", "@! 'done';\n"},
		{"1+2*3;", "1 + 2 * 3;\n"},
		{"(1+2)*3;", "(1 + 2) * 3;\n"},
		{"!$a;", "!$a;\n"},
		{"$x>0?1:0;", "$x > 0 ? 1 : 0;\n"},
		{"f(1,2,);", "f(1, 2);\n"},
		{"f();", "f();\n"},
		{"반복 $x<10 {$x=$x+1;}", "반복 $x < 10 {\n    $x = $x + 1;\n}\n"},
		{
			"만약 $a==1 {@ $a;} 혹은 $a==2 {@ $b;} 그외 {@ $c;}",
			"만약 $a == 1 {\n    @ $a;\n} 혹은 $a == 2 {\n    @ $b;\n} 그외 {\n    @ $c;\n}\n",
		},
		{"만약 1 { }", "만약 1 {\n}\n"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		program, interner := parseProgram(t, tc.src)
		assert.Equal(tc.want, format(t, program, interner), "src=%q", tc.src)
	}
}

func TestFormatNestedIndent(t *testing.T) {
	assert := assert.New(t)

	program, interner := parseProgram(t, "반복 1 { 만약 $a { 종료; } }")
	assert.Equal(
		"반복 1 {\n    만약 $a {\n        종료;\n    }\n}\n",
		format(t, program, interner))
}

func TestFormatRoundTrip(t *testing.T) {
	sources := []string{
		"$1 = 1 + 2 * 3;",
		"(1 + 2) * (3 - 4);",
		"@ '123' 123;",
		"@!;",
		"!$a | $b ^ $c & $d;",
		"$x > 0 ? f($x,) : 0;",
		"만약 $a == 1 { @ $a; } 혹은 $a == 2 { @ $b; } 그외 { @ $c; 종료; }",
		"반복 $x < 10 { $x = $x + 1; 만약 $x % 2 { @@ $x; } }",
	}

	assert := assert.New(t)
	for _, src := range sources {
		program, interner := parseProgram(t, src)
		formatted := format(t, program, interner)

		reparsed, err := Parse(formatted, NewInterner())
		require.NoError(t, err, "formatted=%q", formatted)
		// formatting preserves structure, including the grouping nodes
		// recorded for explicit parentheses
		assert.Empty(cmp.Diff(program, reparsed), "src=%q", src)
	}
}

func TestFormatFixedPoint(t *testing.T) {
	assert := assert.New(t)

	src := "만약 $a{@'x';}혹은 $b{반복 1{종료;};}"
	program, interner := parseProgram(t, src)
	once := format(t, program, interner)

	reparsed, interner := parseProgram(t, once)
	twice := format(t, reparsed, interner)
	assert.Equal(once, twice)
}
