package token

// ID is the integer identity of a token kind, shared by every consumer of the table.
type ID int32

// Base is the first assigned ID. ANTLR reserves 0 for its own use.
const Base ID = 1

// Invalid is never assigned to a catalog entry.
const Invalid ID = 0

// DummyName fills the reserved slots of generated name/text tables.
const DummyName = "DUMMY"

// KeywordPrefix is prepended to the upper-cased word of every reserved word token.
const KeywordPrefix = "KW_"
