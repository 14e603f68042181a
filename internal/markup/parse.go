package markup

// Attr is one classified attribute. Boolean attributes render as a
// bare name; value-bearing attributes render name="escaped value".
type Attr struct {
	Name  string
	Value string // raw, escaped only at render time
	Bool  bool
}

// ParsedInput is the structured result of one parse pass. It is
// recreated wholesale on every pass; nothing persists between passes.
type ParsedInput struct {
	Name  string
	Attrs []Attr
}

// Parse runs the tokenizer and the attribute classifier over one raw
// buffer. Token 0 is the tag name; from token 1 on, empty tokens
// before a name are skipped (they are extra consecutive delimiters),
// and each name token is paired with its follower:
//
//   - no follower: boolean attribute
//   - empty follower: boolean attribute, the empty token is consumed
//     as the intentional "no value" marker
//   - non-empty follower: value-bearing, the follower is the value
//
// The attribute table holds MaxAttrSlots slots; a pair consumes two.
// A value that would overflow the table demotes its attribute to
// boolean: the name is kept, the value dropped.
func Parse(buf []byte) ParsedInput {
	tokens := SplitTokens(buf, Delim)
	var p ParsedInput
	if len(tokens) == 0 {
		return p
	}
	p.Name = CleanName(tokens[0])

	slots := 0
	i := 1
	for i < len(tokens) && slots < MaxAttrSlots {
		if tokens[i] == "" {
			i++
			continue
		}
		attr := Attr{Name: CleanName(tokens[i]), Bool: true}
		i++
		slots++
		if i < len(tokens) {
			switch {
			case tokens[i] == "":
				// explicit "no value" marker
				i++
			case slots < MaxAttrSlots:
				attr.Bool = false
				attr.Value = tokens[i]
				i++
				slots++
			default:
				// the value slot would overflow the table: keep the
				// dangling name as boolean, drop the value
				i++
			}
		}
		p.Attrs = append(p.Attrs, attr)
	}
	return p
}
