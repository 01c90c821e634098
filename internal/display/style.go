package display

import (
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/cairn/internal/columns"
	"github.com/harrison/cairn/internal/format"
	"github.com/harrison/cairn/internal/models"
	"github.com/harrison/cairn/internal/theme"
)

// Environment is the subset of process state colour detection reads
type Environment struct {
	Getenv func(string) string
	Lookup func(string) (string, bool)
	IsTTY  bool
}

// ProcessEnvironment reads the real environment and stdout
func ProcessEnvironment() Environment {
	fd := os.Stdout.Fd()
	return Environment{
		Getenv: os.Getenv,
		Lookup: os.LookupEnv,
		IsTTY:  isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// ColoursEnabled applies the conventional overrides in order: NO_COLOR,
// FORCE_COLOR, CLICOLOR_FORCE, CLICOLOR=0 and TERM=dumb, then falls back to
// whether stdout is a terminal
func (env Environment) ColoursEnabled() bool {
	if _, ok := env.Lookup("NO_COLOR"); ok {
		return false
	}
	if v := env.Getenv("FORCE_COLOR"); v != "" && v != "0" {
		return true
	}
	if v, ok := env.Lookup("CLICOLOR_FORCE"); ok && v != "0" {
		return true
	}
	if v, ok := env.Lookup("CLICOLOR"); ok && v == "0" {
		return false
	}
	if env.Getenv("TERM") == "dumb" {
		return false
	}
	return env.IsTTY
}

// Resolve turns an always/auto/never setting into a decision
func Resolve(when models.When, auto bool) bool {
	switch when {
	case models.WhenAlways:
		return true
	case models.WhenNever:
		return false
	default:
		return auto
	}
}

// Styler decorates names and values for one run. Every colour is enabled or
// disabled per object so output never depends on global colour state.
type Styler struct {
	Colours    bool
	Icons      bool
	Hyperlinks bool
	Quote      models.QuoteStyle

	theme   theme.Theme
	painted map[paintKey]*color.Color
}

type emphasis int

const (
	regular emphasis = iota
	bold
	heading
)

type paintKey struct {
	colour theme.Colour
	emph   emphasis
}

// NewStyler resolves the colour, icon and hyperlink settings against env
func NewStyler(opts *models.Options, env Environment, th theme.Theme) *Styler {
	return NewStylerWith(
		Resolve(opts.Colours, env.ColoursEnabled()),
		Resolve(opts.Icons, env.IsTTY),
		Resolve(opts.Hyperlink, env.IsTTY),
		opts.QuoteName,
		th,
	)
}

// NewStylerWith builds a styler from already resolved settings
func NewStylerWith(colours, icons, hyperlinks bool, quote models.QuoteStyle, th theme.Theme) *Styler {
	return &Styler{
		Colours:    colours,
		Icons:      icons,
		Hyperlinks: hyperlinks,
		Quote:      quote,
		theme:      th,
		painted:    make(map[paintKey]*color.Color),
	}
}

// paint returns the fatih colour for c, built once per run
func (s *Styler) paint(c theme.Colour, emph emphasis) *color.Color {
	key := paintKey{colour: c, emph: emph}
	if p, ok := s.painted[key]; ok {
		return p
	}
	var p *color.Color
	switch emph {
	case bold:
		p = c.New(color.Bold)
	case heading:
		p = c.New(color.Bold, color.Underline)
	default:
		p = c.New()
	}
	if s.Colours {
		p.EnableColor()
	} else {
		p.DisableColor()
	}
	s.painted[key] = p
	return p
}

// Name renders an entry name with icon, quoting, hyperlink and colour.
// Tree output never quotes. alignSpace is set when another name in the same
// listing gets quoted.
func (s *Styler) Name(e models.Entry, alignSpace, tree bool) string {
	var b strings.Builder
	if s.Icons {
		b.WriteRune(IconFor(e))
		b.WriteByte(' ')
	}

	style := s.Quote
	if tree {
		style = models.QuoteNever
	}
	wrap := func(text string) string { return text }
	if s.Hyperlinks {
		wrap = func(text string) string { return Hyperlink(text, e.Path()) }
	}

	// the link goes inside the quotes, around the escaped name
	name := e.Name()
	if link, target, ok := models.SplitSymlinkName(name); ok {
		b.WriteString(quoteAround(link, style, alignSpace, wrap))
		b.WriteString(models.SymlinkArrow)
		b.WriteString(quoteOne(target, style, false))
	} else {
		b.WriteString(quoteAround(name, style, alignSpace, wrap))
	}

	return s.nameColour(e).Sprint(b.String())
}

func (s *Styler) nameColour(e models.Entry) *color.Color {
	switch v := e.(type) {
	case *models.Directory:
		return s.paint(s.theme.EntryDirectory, bold)
	case *models.Symlink:
		if !v.TargetExists {
			return s.paint(s.theme.EntryBroken, regular)
		}
		return s.paint(s.theme.EntrySymlink, regular)
	case *models.File:
		if m := v.Metadata(); !m.Empty() && m.Mode&0o111 != 0 {
			return s.paint(s.theme.PermExecute, bold)
		}
		return s.paint(s.theme.File(v.Extension), regular)
	default:
		panic("display: unknown entry type")
	}
}

// Value colours a column value. Name is styled separately through Name and
// dates through Date.
func (s *Styler) Value(c columns.Column, text string) string {
	if text == format.Placeholder {
		return s.paint(s.theme.Placeholder, regular).Sprint(text)
	}
	t := &s.theme
	switch c.Kind {
	case columns.Permissions:
		return s.permissions(text)
	case columns.Size, columns.BlockSize:
		return s.paint(t.Size(text), bold).Sprint(text)
	case columns.User:
		return s.paint(t.User, regular).Sprint(text)
	case columns.Group:
		return s.paint(t.Group, regular).Sprint(text)
	case columns.Inode, columns.Blocks, columns.HardLinks:
		return s.paint(t.Numeric, regular).Sprint(text)
	case columns.Xattr, columns.Context:
		return s.paint(t.Xattr, regular).Sprint(text)
	case columns.ACL:
		return s.paint(t.ACL, regular).Sprint(text)
	case columns.Mountpoint:
		return s.paint(t.Mountpoint, regular).Sprint(text)
	case columns.Checksum:
		return s.paint(t.Checksum, regular).Sprint(text)
	case columns.Magic:
		return s.paint(t.Magic, regular).Sprint(text)
	default:
		return text
	}
}

// Date colours a formatted timestamp by how old it is
func (s *Styler) Date(text string, age time.Duration) string {
	if text == format.Placeholder {
		return s.paint(s.theme.Placeholder, regular).Sprint(text)
	}
	return s.paint(s.theme.Age(age), regular).Sprint(text)
}

// permissions colours each character of a permission string on its own
func (s *Styler) permissions(text string) string {
	if !s.Colours {
		return text
	}
	var b strings.Builder
	for i, r := range []rune(text) {
		b.WriteString(s.paint(s.theme.Permission(i, r), permissionEmphasis(r)).Sprint(string(r)))
	}
	return b.String()
}

func permissionEmphasis(r rune) emphasis {
	if r == '-' || r == '.' {
		return regular
	}
	return bold
}

// Header styles a column header
func (s *Styler) Header(text string) string {
	return s.paint(s.theme.TableHeader, heading).Sprint(text)
}

// Connector styles tree connector glyphs
func (s *Styler) Connector(text string) string {
	if text == "" {
		return ""
	}
	return s.paint(s.theme.TreeConnector, regular).Sprint(text)
}

// Summary styles the closing count line
func (s *Styler) Summary(text string) string {
	return s.paint(s.theme.Placeholder, regular).Sprint(text)
}

// PathHeader styles the directory title printed between recursive levels
func (s *Styler) PathHeader(path string) string {
	return s.paint(s.theme.PathDisplay, bold).Sprint(path)
}
