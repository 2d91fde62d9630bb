package render

// NavEntry is one item of the header menu.
type NavEntry struct {
	Name  string
	Href  string
	Icon  string
	Color string // optional hover colour token
}

// Navigation is the fixed header menu. It is maintained by hand and is not
// derived from the content categories: an anchor without a matching
// section is still a valid, merely empty, link.
var Navigation = []NavEntry{
	{Name: "首页", Href: "#", Icon: "🏠"},
	{Name: "电子书", Href: "#ebooks", Icon: "📚", Color: "emerald"},
	{Name: "漫画", Href: "#comics", Icon: "🎭", Color: "violet"},
	{Name: "影视", Href: "#movies", Icon: "🎬", Color: "rose"},
	{Name: "游戏", Href: "#games", Icon: "🎮", Color: "cyan"},
	{Name: "学习", Href: "#study", Icon: "📖", Color: "amber"},
	{Name: "导航", Href: "#navigation", Icon: "🧭", Color: "indigo"},
}

const defaultNavHover = "hover:bg-blue-50 dark:hover:bg-gray-800 hover:text-blue-600 dark:hover:text-blue-400"

var navHoverClasses = map[string]string{
	"emerald": "hover:bg-emerald-50 dark:hover:bg-emerald-900/20 hover:text-emerald-600 dark:hover:text-emerald-400",
	"violet":  "hover:bg-violet-50 dark:hover:bg-violet-900/20 hover:text-violet-600 dark:hover:text-violet-400",
	"rose":    "hover:bg-rose-50 dark:hover:bg-rose-900/20 hover:text-rose-600 dark:hover:text-rose-400",
	"cyan":    "hover:bg-cyan-50 dark:hover:bg-cyan-900/20 hover:text-cyan-600 dark:hover:text-cyan-400",
	"amber":   "hover:bg-amber-50 dark:hover:bg-amber-900/20 hover:text-amber-600 dark:hover:text-amber-400",
	"indigo":  "hover:bg-indigo-50 dark:hover:bg-indigo-900/20 hover:text-indigo-600 dark:hover:text-indigo-400",
}

// NavHoverClass maps a nav colour token to its hover classes.
func NavHoverClass(color string) string {
	if c, ok := navHoverClasses[color]; ok {
		return c
	}
	return defaultNavHover
}

// ColorPair styles a category header: border and text gradients.
type ColorPair struct {
	Border string
	Text   string
}

// DefaultCategory is the entry unknown identifiers fall back to.
const DefaultCategory = "ebooks"

var categoryColors = map[string]ColorPair{
	"ebooks":     {Border: "from-blue-200 to-purple-200", Text: "from-blue-600 to-purple-600"},
	"comics":     {Border: "from-pink-200 to-purple-200", Text: "from-pink-600 to-purple-600"},
	"movies":     {Border: "from-red-200 to-orange-200", Text: "from-red-600 to-orange-600"},
	"games":      {Border: "from-green-200 to-teal-200", Text: "from-green-600 to-teal-600"},
	"tools":      {Border: "from-indigo-200 to-blue-200", Text: "from-indigo-600 to-blue-600"},
	"study":      {Border: "from-yellow-200 to-orange-200", Text: "from-yellow-600 to-orange-600"},
	"navigation": {Border: "from-cyan-200 to-blue-200", Text: "from-cyan-600 to-blue-600"},
}

// CategoryColor resolves the header colours of a category.
func CategoryColor(id string) ColorPair {
	if c, ok := categoryColors[id]; ok {
		return c
	}
	return categoryColors[DefaultCategory]
}

// Palette styles the hover state of a resource card.
type Palette struct {
	Border string
	Glow   string
	Title  string
}

var cardPalettes = map[string]Palette{
	"ebooks":     palette("emerald"),
	"comics":     palette("violet"),
	"movies":     palette("rose"),
	"games":      palette("cyan"),
	"tools":      palette("indigo"),
	"study":      palette("amber"),
	"navigation": palette("sky"),
}

func palette(c string) Palette {
	return Palette{
		Border: "hover:border-" + c + "-300 dark:hover:border-" + c + "-600",
		Glow:   "group-hover:shadow-" + c + "-200/50 dark:group-hover:shadow-" + c + "-900/50",
		Title:  "group-hover:text-" + c + "-600 dark:group-hover:text-" + c + "-400",
	}
}

// CardPalette resolves the card colours of a category.
func CardPalette(id string) Palette {
	if p, ok := cardPalettes[id]; ok {
		return p
	}
	return cardPalettes[DefaultCategory]
}
