package el

// voidElements cannot have children.
var voidElements = map[string]bool{
	"area": true,
	"base": true,
	"br": true,
	"col": true,
	"embed": true,
	"hr": true,
	"img": true,
	"input": true,
	"link": true,
	"meta": true,
	"source": true,
	"track": true,
	"wbr": true,
}

// IsVoidElement reports whether tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// LinkEl builds a <link> element.
func LinkEl(args ...any) *VNode { return Element("link", args...) }

// Document structure

func Html(args ...any) *VNode { return Element("html", args...) }
func Head(args ...any) *VNode { return Element("head", args...) }
func Body(args ...any) *VNode { return Element("body", args...) }
func TitleEl(args ...any) *VNode { return Element("title", args...) }
func Meta(args ...any) *VNode { return Element("meta", args...) }
func Base(args ...any) *VNode { return Element("base", args...) }
func StyleEl(args ...any) *VNode { return Element("style", args...) }
func Script(args ...any) *VNode { return Element("script", args...) }
func Noscript(args ...any) *VNode { return Element("noscript", args...) }
func Template(args ...any) *VNode { return Element("template", args...) }
func SlotEl(args ...any) *VNode { return Element("slot", args...) }

// Sectioning

func Header(args ...any) *VNode { return Element("header", args...) }
func Footer(args ...any) *VNode { return Element("footer", args...) }
func Main(args ...any) *VNode { return Element("main", args...) }
func Nav(args ...any) *VNode { return Element("nav", args...) }
func Section(args ...any) *VNode { return Element("section", args...) }
func Article(args ...any) *VNode { return Element("article", args...) }
func Aside(args ...any) *VNode { return Element("aside", args...) }
func Address(args ...any) *VNode { return Element("address", args...) }
func H1(args ...any) *VNode { return Element("h1", args...) }
func H2(args ...any) *VNode { return Element("h2", args...) }
func H3(args ...any) *VNode { return Element("h3", args...) }
func H4(args ...any) *VNode { return Element("h4", args...) }
func H5(args ...any) *VNode { return Element("h5", args...) }
func H6(args ...any) *VNode { return Element("h6", args...) }
func Hgroup(args ...any) *VNode { return Element("hgroup", args...) }
func Search(args ...any) *VNode { return Element("search", args...) }

// Text content

func Div(args ...any) *VNode { return Element("div", args...) }
func P(args ...any) *VNode { return Element("p", args...) }
func Hr(args ...any) *VNode { return Element("hr", args...) }
func Pre(args ...any) *VNode { return Element("pre", args...) }
func Blockquote(args ...any) *VNode { return Element("blockquote", args...) }
func Ol(args ...any) *VNode { return Element("ol", args...) }
func Ul(args ...any) *VNode { return Element("ul", args...) }
func Li(args ...any) *VNode { return Element("li", args...) }
func Dl(args ...any) *VNode { return Element("dl", args...) }
func Dt(args ...any) *VNode { return Element("dt", args...) }
func Dd(args ...any) *VNode { return Element("dd", args...) }
func Figure(args ...any) *VNode { return Element("figure", args...) }
func Figcaption(args ...any) *VNode { return Element("figcaption", args...) }
func Menu(args ...any) *VNode { return Element("menu", args...) }

// Inline text

func A(args ...any) *VNode { return Element("a", args...) }
func Em(args ...any) *VNode { return Element("em", args...) }
func Strong(args ...any) *VNode { return Element("strong", args...) }
func Small(args ...any) *VNode { return Element("small", args...) }
func S(args ...any) *VNode { return Element("s", args...) }
func CiteEl(args ...any) *VNode { return Element("cite", args...) }
func Q(args ...any) *VNode { return Element("q", args...) }
func Dfn(args ...any) *VNode { return Element("dfn", args...) }
func Abbr(args ...any) *VNode { return Element("abbr", args...) }
func Ruby(args ...any) *VNode { return Element("ruby", args...) }
func Rt(args ...any) *VNode { return Element("rt", args...) }
func Rp(args ...any) *VNode { return Element("rp", args...) }
func Code(args ...any) *VNode { return Element("code", args...) }
func Var(args ...any) *VNode { return Element("var", args...) }
func Samp(args ...any) *VNode { return Element("samp", args...) }
func Kbd(args ...any) *VNode { return Element("kbd", args...) }
func Sub(args ...any) *VNode { return Element("sub", args...) }
func Sup(args ...any) *VNode { return Element("sup", args...) }
func I(args ...any) *VNode { return Element("i", args...) }
func B(args ...any) *VNode { return Element("b", args...) }
func U(args ...any) *VNode { return Element("u", args...) }
func Mark(args ...any) *VNode { return Element("mark", args...) }
func Bdi(args ...any) *VNode { return Element("bdi", args...) }
func Bdo(args ...any) *VNode { return Element("bdo", args...) }
func Span(args ...any) *VNode { return Element("span", args...) }
func Br(args ...any) *VNode { return Element("br", args...) }
func Wbr(args ...any) *VNode { return Element("wbr", args...) }
func Time_(args ...any) *VNode { return Element("time", args...) }
func Ins(args ...any) *VNode { return Element("ins", args...) }
func Del(args ...any) *VNode { return Element("del", args...) }

// Embedded content

func Img(args ...any) *VNode { return Element("img", args...) }
func Iframe(args ...any) *VNode { return Element("iframe", args...) }
func Embed(args ...any) *VNode { return Element("embed", args...) }
func Object(args ...any) *VNode { return Element("object", args...) }
func Picture(args ...any) *VNode { return Element("picture", args...) }
func Source(args ...any) *VNode { return Element("source", args...) }
func Video(args ...any) *VNode { return Element("video", args...) }
func Audio(args ...any) *VNode { return Element("audio", args...) }
func Track(args ...any) *VNode { return Element("track", args...) }
func Canvas(args ...any) *VNode { return Element("canvas", args...) }
func MapEl(args ...any) *VNode { return Element("map", args...) }
func Area(args ...any) *VNode { return Element("area", args...) }

// Tables

func Table(args ...any) *VNode { return Element("table", args...) }
func Caption(args ...any) *VNode { return Element("caption", args...) }
func Colgroup(args ...any) *VNode { return Element("colgroup", args...) }
func Col(args ...any) *VNode { return Element("col", args...) }
func Thead(args ...any) *VNode { return Element("thead", args...) }
func Tbody(args ...any) *VNode { return Element("tbody", args...) }
func Tfoot(args ...any) *VNode { return Element("tfoot", args...) }
func Tr(args ...any) *VNode { return Element("tr", args...) }
func Td(args ...any) *VNode { return Element("td", args...) }
func Th(args ...any) *VNode { return Element("th", args...) }

// Forms

func Form(args ...any) *VNode { return Element("form", args...) }
func LabelEl(args ...any) *VNode { return Element("label", args...) }
func Input(args ...any) *VNode { return Element("input", args...) }
func Button(args ...any) *VNode { return Element("button", args...) }
func Select(args ...any) *VNode { return Element("select", args...) }
func Datalist(args ...any) *VNode { return Element("datalist", args...) }
func Optgroup(args ...any) *VNode { return Element("optgroup", args...) }
func Option(args ...any) *VNode { return Element("option", args...) }
func Textarea(args ...any) *VNode { return Element("textarea", args...) }
func Output(args ...any) *VNode { return Element("output", args...) }
func Progress(args ...any) *VNode { return Element("progress", args...) }
func Meter(args ...any) *VNode { return Element("meter", args...) }
func Fieldset(args ...any) *VNode { return Element("fieldset", args...) }
func Legend(args ...any) *VNode { return Element("legend", args...) }

// Interactive

func Details(args ...any) *VNode { return Element("details", args...) }
func Summary(args ...any) *VNode { return Element("summary", args...) }
func Dialog(args ...any) *VNode { return Element("dialog", args...) }

// SVG

func Svg(args ...any) *VNode { return Element("svg", args...) }
func G(args ...any) *VNode { return Element("g", args...) }
func Defs(args ...any) *VNode { return Element("defs", args...) }
func Symbol(args ...any) *VNode { return Element("symbol", args...) }
func UseEl(args ...any) *VNode { return Element("use", args...) }
func PathEl(args ...any) *VNode { return Element("path", args...) }
func Circle(args ...any) *VNode { return Element("circle", args...) }
func Ellipse(args ...any) *VNode { return Element("ellipse", args...) }
func Line(args ...any) *VNode { return Element("line", args...) }
func Polyline(args ...any) *VNode { return Element("polyline", args...) }
func Polygon(args ...any) *VNode { return Element("polygon", args...) }
func Rect(args ...any) *VNode { return Element("rect", args...) }
func LinearGradient(args ...any) *VNode { return Element("linearGradient", args...) }
func RadialGradient(args ...any) *VNode { return Element("radialGradient", args...) }
func Stop(args ...any) *VNode { return Element("stop", args...) }
func ClipPath(args ...any) *VNode { return Element("clipPath", args...) }
func MaskEl(args ...any) *VNode { return Element("mask", args...) }
func PatternEl(args ...any) *VNode { return Element("pattern", args...) }
func ForeignObject(args ...any) *VNode { return Element("foreignObject", args...) }
