package markup

// Capacity limits of the compiler. All are static; exceeding any of
// them degrades silently (truncate, drop, demote) rather than failing.
const (
	// MaxInput is the logical capacity of the raw input buffer.
	MaxInput = 4096
	// MaxOutput is the capacity of each generated output buffer.
	MaxOutput = 8192
	// MaxTokens caps how many tokens one parse pass will emit.
	MaxTokens = 32
	// MaxTokenLen caps the byte length of a single token.
	MaxTokenLen = 255
	// MaxAttrSlots caps the attribute table. A value-bearing attribute
	// consumes two slots (name and value), a boolean attribute one.
	MaxAttrSlots = 16
	// WrapColumn is the display form's line-length limit.
	WrapColumn = 42
	// Delim separates tokens in the raw buffer.
	Delim = '\t'
)

// SplitTokens splits buf on the delimiter byte, emitting exactly one
// token (possibly empty) per maximal delimiter-free run. The scan
// treats the end of input as an implicit terminator, so a trailing
// delimiter yields a final empty token and nothing more.
//
// The token count is capped at MaxTokens; anything past the cap is
// dropped without error. Each token is truncated to MaxTokenLen bytes.
func SplitTokens(buf []byte, delim byte) []string {
	tokens := make([]string, 0, 8)
	start := 0
	for i := 0; i <= len(buf); i++ {
		if i < len(buf) && buf[i] != delim {
			continue
		}
		if len(tokens) == MaxTokens {
			break
		}
		tok := buf[start:i]
		if len(tok) > MaxTokenLen {
			tok = tok[:MaxTokenLen]
		}
		tokens = append(tokens, string(tok))
		start = i + 1
	}
	return tokens
}
