/*
Package kes implements the syntax front end for the kes scripting language:
a scanner, a recursive-descent parser, the syntax tree it produces, and a
printer that renders the tree back into canonical source.

Grammars

	program    --> statement* EOF ;
	statement  --> exitStmt
	             | printStmt
	             | ifStmt
	             | whileStmt
	             | assignStmt
	             | exprStmt ;
	exitStmt   --> "종료" ";" ;
	printStmt  --> ( "@@" | "@" | "@!" ) expression* ";" ;
	ifStmt     --> "만약" expression block
	               ( "혹은" expression block )*
	               ( "그외" block )? ;
	whileStmt  --> "반복" expression block ;
	assignStmt --> VARIABLE "=" expression ";" ;
	exprStmt   --> expression ";" ;
	block      --> "{" statement* "}" ;
	expression --> ternary ;
	ternary    --> or ( "?" or ":" or )? ;
	or         --> xor ( "|" xor )* ;
	xor        --> and ( "^" and )* ;
	and        --> comparison ( "&" comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" | "==" | "!=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "*" | "/" | "%" ) unary )* ;
	unary      --> "!" unary
	             | call ;
	call       --> BUILTIN "(" args ")"
	             | primary ;
	args       --> ( expression "," )* expression? ;
	primary    --> INT_LIT | STR_LIT | VARIABLE
	             | "(" expression ")" ;

A redundant ';' after any statement is absorbed, so simple statements need
their terminator while block statements merely tolerate one.

Parsing is a pure, single-pass function from a token stream to a tree: the
first failure aborts with either a lexical error (the source cannot be
tokenized) or a syntax error (the tokens do not fit the grammar), both
carrying the line they happened on. Evaluation of the tree, name resolution,
and builtin lookup all belong to the execution stage and are not part of this
package.
*/
package kes
