package markup

// RenderMode selects the serializer's tag-closing style.
type RenderMode int

const (
	// Regular closes with a separate closing tag: <t>\n\n</t>.
	Regular RenderMode = iota
	// SelfClosing closes inline: <t />.
	SelfClosing
)

func (m RenderMode) String() string {
	if m == SelfClosing {
		return "self-closing"
	}
	return "regular"
}

// Placeholder is rendered when there is no tag name yet, so the
// typing collaborator never emits an empty tag.
const Placeholder = "<tag_name>"

// inter-tag gaps for the Regular close; the display form gets one
// extra newline for stronger visual separation.
const (
	compactGap = "\n\n"
	displayGap = "\n\n\n"
)

// sink is where the serializer streams its fragments. Both
// implementations are bounded at MaxOutput bytes and silently stop
// accepting input when full.
type sink interface {
	writeByte(c byte)
	writeString(s string)
	remaining() int
}

// rawSink appends verbatim.
type rawSink struct {
	b []byte
}

func (w *rawSink) writeByte(c byte) {
	if len(w.b) < MaxOutput {
		w.b = append(w.b, c)
	}
}

func (w *rawSink) writeString(s string) {
	for i := 0; i < len(s); i++ {
		w.writeByte(s[i])
	}
}

func (w *rawSink) remaining() int { return MaxOutput - len(w.b) }

// wrapSink applies the display form's word-wrap filter: it counts
// bytes since the last newline and inserts a newline before any byte
// that would push the current line to WrapColumn. The filter works
// per byte as fragments stream through, so a single multi-byte
// fragment can span a forced wrap. Newlines reset the counter and are
// never themselves wrapped.
type wrapSink struct {
	b   []byte
	col int
}

func (w *wrapSink) writeByte(c byte) {
	if c == '\n' {
		w.col = 0
		w.push(c)
		return
	}
	if w.col+1 >= WrapColumn {
		w.push('\n')
		w.col = 0
	}
	w.push(c)
	w.col++
}

func (w *wrapSink) writeString(s string) {
	for i := 0; i < len(s); i++ {
		w.writeByte(s[i])
	}
}

func (w *wrapSink) push(c byte) {
	if len(w.b) < MaxOutput {
		w.b = append(w.b, c)
	}
}

func (w *wrapSink) remaining() int { return MaxOutput - len(w.b) }

// Output holds the two renderings regenerated on every parse pass.
type Output struct {
	Compact string // verbatim, for typing/clipboard
	Display string // word-wrapped, for on-screen preview
}

// Render serializes p in both output forms under the given mode.
func Render(p ParsedInput, mode RenderMode) Output {
	var compact rawSink
	renderInto(&compact, p, mode, compactGap)
	var display wrapSink
	renderInto(&display, p, mode, displayGap)
	return Output{Compact: string(compact.b), Display: string(display.b)}
}

// Compile is the main entry point: one raw buffer in, both output
// strings out. It is invoked after every buffer mutation.
func Compile(buf []byte, mode RenderMode) Output {
	return Render(Parse(buf), mode)
}

func renderInto(w sink, p ParsedInput, mode RenderMode, gap string) {
	if p.Name == "" {
		w.writeString(Placeholder)
		return
	}
	w.writeByte('<')
	w.writeString(p.Name)
	for _, a := range p.Attrs {
		w.writeByte(' ')
		w.writeString(a.Name)
		if !a.Bool {
			w.writeString(`="`)
			writeEscaped(w, a.Value)
			w.writeByte('"')
		}
	}
	if mode == SelfClosing {
		w.writeString(" />\n")
		return
	}
	w.writeByte('>')
	w.writeString(gap)
	w.writeString("</")
	w.writeString(p.Name)
	w.writeByte('>')
}
