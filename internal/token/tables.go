package token

// special holds tokens with no fixed spelling or with a spelling the scanner
// recognizes outside the operator and keyword paths.
var special = []Def{
	// produced when the lexer finds an invalid token
	D("ERROR", ""),
	D("LIT_STRING", "string-literal"),
	D("LIT_NUM", "number-literal"),
	D("LIT_UNBASED_UNSIZED", "unbased-unsized-literal"),
	D("LIT_TIME", "time-literal"),
	D("ID", "identifier"),
	D("SYSTEM_ID", "system-identifier"),
	D("TIMESCALE", "`timescale"),
	D("DOLLAR_UNIT", "$unit"),
	D("DOLLAR_ROOT", "$root"),
	D("DOLLAR_FATAL", "$fatal"),
	D("DOLLAR_ERROR", "$error"),
	D("DOLLAR_WARNING", "$warning"),
	D("DOLLAR_INFO", "$info"),
	D("DOLLAR_SETUP", "$setup"),
	D("DOLLAR_HOLD", "$hold"),
	D("DOLLAR_SETUPHOLD", "$setuphold"),
	D("DOLLAR_RECOVERY", "$recovery"),
	D("DOLLAR_REMOVAL", "$removal"),
	D("DOLLAR_RECREM", "$recrem"),
	D("DOLLAR_SKEW", "$skew"),
	D("DOLLAR_TIMESKEW", "$timeskew"),
	D("DOLLAR_FULLSKEW", "$fullskew"),
	D("DOLLAR_PERIOD", "$period"),
	D("DOLLAR_WIDTH", "$width"),
	D("DOLLAR_NOCHANGE", "$nochange"),
	D("KW_1STEP", "1step"),
}

// operators are lexed greedily: the longest spelling wins.
var operators = []Def{
	D("DOLLAR", "$"),
	D("HASH", "#"),
	D("HASH2", "##"),
	D("HASH_SUB_HASH", "#-#"),
	D("HASH_EQ_HASH", "#=#"),
	D("AT_SIGN", "@"),
	D("APOSTROPHE", "'"),
	D("DOT", "."),
	D("COLON", ":"),
	D("COLON_EQ", ":="),
	D("COLON_DIV", ":/"),
	D("COLON2", "::"),
	D("SEMI", ";"),
	D("COMMA", ","),
	D("LPAREN", "("),
	D("RPAREN", ")"),
	D("LSQUARE", "["),
	D("RSQUARE", "]"),
	D("LCURLY", "{"),
	D("RCURLY", "}"),
	D("QUE", "?"),
	D("NOT", "!"),
	D("NOT_EQ", "!="),
	D("NOT_EQ2", "!=="),
	D("NOT_EQ_Q", "!=?"),
	D("MOD", "%"),
	D("MOD_EQ", "%="),
	D("AND", "&"),
	D("AND2", "&&"),
	D("AND3", "&&&"),
	D("AND_EQ", "&="),
	D("MUL", "*"),
	D("MUL2", "**"),
	D("MUL_EQ", "*="),
	D("MUL_GT", "*>"),
	D("ADD", "+"),
	D("ADD2", "++"),
	D("ADD_EQ", "+="),
	D("ADD_COLON", "+:"),
	D("SUB", "-"),
	D("SUB2", "--"),
	D("SUB_EQ", "-="),
	D("SUB_GT", "->"),
	D("SUB_GT2", "->>"),
	D("SUB_COLON", "-:"),
	D("DIV", "/"),
	D("DIV_EQ", "/="),
	D("LT", "<"),
	D("LT_SUB_GT", "<->"),
	D("LT2", "<<"),
	D("LT3", "<<<"),
	D("LT3_EQ", "<<<="),
	D("LT2_EQ", "<<="),
	D("LT_EQ", "<="),
	D("EQ", "="),
	D("EQ2", "=="),
	D("EQ_GT", "=>"),
	D("EQ3", "==="),
	D("EQ2_Q", "==?"),
	D("GT", ">"),
	D("GT_EQ", ">="),
	D("GT2", ">>"),
	D("GT2_EQ", ">>="),
	D("GT3", ">>>"),
	D("GT3_EQ", ">>>="),
	D("XOR", "^"),
	D("XOR_EQ", "^="),
	D("XOR_INV", "^~"),
	D("OR", "|"),
	D("OR_EQ", "|="),
	D("OR2", "||"),
	D("OR_SUB_GT", "|->"),
	D("OR_EQ_GT", "|=>"),
	D("INV", "~"),
	D("INV_AND", "~&"),
	D("INV_XOR", "~^"),
	D("INV_OR", "~|"),
}

// Special returns a copy of the structurally special token table.
func Special() []Def { return append([]Def(nil), special...) }

// Operators returns a copy of the operator token table.
func Operators() []Def { return append([]Def(nil), operators...) }
