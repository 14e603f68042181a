package markup

// longest single substitution the escaper can emit (&quot;)
const maxEntityLen = 6

// writeEscaped copies val into w with entity substitutions for the
// four bytes that would break an attribute value: " & < >. Before
// each emission it checks that the sink can still hold the longest
// possible substitution and stops copying — no error — when it
// cannot.
func writeEscaped(w sink, val string) {
	for i := 0; i < len(val); i++ {
		if w.remaining() < maxEntityLen {
			return
		}
		switch val[i] {
		case '"':
			w.writeString("&quot;")
		case '&':
			w.writeString("&amp;")
		case '<':
			w.writeString("&lt;")
		case '>':
			w.writeString("&gt;")
		default:
			w.writeByte(val[i])
		}
	}
}
