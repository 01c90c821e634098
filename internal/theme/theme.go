package theme

import (
	"strings"
	"time"
)

// Theme is every colour a listing uses
type Theme struct {
	SizeBytes Colour `yaml:"size_bytes"`
	SizeKB    Colour `yaml:"size_kb"`
	SizeMB    Colour `yaml:"size_mb"`
	SizeGB    Colour `yaml:"size_gb"`

	DateRecent Colour `yaml:"date_recent"`
	DateHours  Colour `yaml:"date_hours"`
	DateDays   Colour `yaml:"date_days"`
	DateWeeks  Colour `yaml:"date_weeks"`
	DateMonths Colour `yaml:"date_months"`
	DateOld    Colour `yaml:"date_old"`

	PermRead     Colour `yaml:"perm_read"`
	PermWrite    Colour `yaml:"perm_write"`
	PermExecute  Colour `yaml:"perm_execute"`
	PermNone     Colour `yaml:"perm_none"`
	PermSpecial  Colour `yaml:"perm_special"`
	PermFiletype Colour `yaml:"perm_filetype"`

	EntryDirectory Colour `yaml:"entry_directory"`
	EntrySymlink   Colour `yaml:"entry_symlink"`
	EntryBroken    Colour `yaml:"entry_broken"`
	EntryFile      Colour `yaml:"entry_file"`

	User  Colour `yaml:"user"`
	Group Colour `yaml:"group"`

	CodeRust       Colour `yaml:"code_rust"`
	CodePython     Colour `yaml:"code_python"`
	CodeJavaScript Colour `yaml:"code_javascript"`
	CodeC          Colour `yaml:"code_c"`
	CodeGo         Colour `yaml:"code_go"`
	CodeJava       Colour `yaml:"code_java"`
	CodeRuby       Colour `yaml:"code_ruby"`
	CodePHP        Colour `yaml:"code_php"`
	CodeLua        Colour `yaml:"code_lua"`

	WebHTML Colour `yaml:"web_html"`
	WebCSS  Colour `yaml:"web_css"`
	WebJSON Colour `yaml:"web_json"`
	WebXML  Colour `yaml:"web_xml"`
	WebYAML Colour `yaml:"web_yaml"`

	DocText     Colour `yaml:"doc_text"`
	DocMarkdown Colour `yaml:"doc_markdown"`
	DocPDF      Colour `yaml:"doc_pdf"`

	MediaImage Colour `yaml:"media_image"`
	MediaVideo Colour `yaml:"media_video"`
	MediaAudio Colour `yaml:"media_audio"`

	Archive Colour `yaml:"archive"`

	TreeConnector Colour `yaml:"tree_connector"`
	TableHeader   Colour `yaml:"table_header"`
	PathDisplay   Colour `yaml:"path_display"`
	Checksum      Colour `yaml:"checksum"`
	Magic         Colour `yaml:"magic"`
	Xattr         Colour `yaml:"xattr"`
	ACL           Colour `yaml:"acl"`
	Mountpoint    Colour `yaml:"mountpoint"`
	Numeric       Colour `yaml:"numeric"`
	Placeholder   Colour `yaml:"placeholder"`
}

// Default is the built-in Gruvbox Dark palette
func Default() Theme {
	var (
		fg           = RGB(235, 219, 178)
		red          = RGB(204, 36, 29)
		brightRed    = RGB(251, 73, 52)
		green        = RGB(152, 151, 26)
		brightGreen  = RGB(184, 187, 38)
		yellow       = RGB(215, 153, 33)
		brightYellow = RGB(250, 189, 47)
		blue         = RGB(69, 133, 136)
		brightBlue   = RGB(131, 165, 152)
		purple       = RGB(177, 98, 134)
		brightPurple = RGB(211, 134, 155)
		aqua         = RGB(104, 157, 106)
		brightAqua   = RGB(142, 192, 124)
		gray         = RGB(146, 131, 116)
		orange       = RGB(214, 93, 14)
		brightOrange = RGB(254, 128, 25)
	)

	return Theme{
		SizeBytes: green,
		SizeKB:    brightGreen,
		SizeMB:    brightAqua,
		SizeGB:    brightYellow,

		DateRecent: brightAqua,
		DateHours:  aqua,
		DateDays:   brightBlue,
		DateWeeks:  blue,
		DateMonths: blue,
		DateOld:    gray,

		PermRead:     yellow,
		PermWrite:    red,
		PermExecute:  green,
		PermNone:     gray,
		PermSpecial:  purple,
		PermFiletype: blue,

		EntryDirectory: brightBlue,
		EntrySymlink:   brightAqua,
		EntryBroken:    brightRed,
		EntryFile:      fg,

		User:  brightYellow,
		Group: brightOrange,

		CodeRust:       orange,
		CodePython:     blue,
		CodeJavaScript: brightYellow,
		CodeC:          aqua,
		CodeGo:         brightBlue,
		CodeJava:       brightOrange,
		CodeRuby:       red,
		CodePHP:        purple,
		CodeLua:        blue,

		WebHTML: brightRed,
		WebCSS:  purple,
		WebJSON: brightPurple,
		WebXML:  fg,
		WebYAML: aqua,

		DocText:     fg,
		DocMarkdown: fg,
		DocPDF:      brightRed,

		MediaImage: brightPurple,
		MediaVideo: brightOrange,
		MediaAudio: brightAqua,

		Archive: yellow,

		TreeConnector: gray,
		TableHeader:   brightYellow,
		PathDisplay:   blue,
		Checksum:      brightAqua,
		Magic:         brightPurple,
		Xattr:         aqua,
		ACL:           green,
		Mountpoint:    purple,
		Numeric:       brightBlue,
		Placeholder:   gray,
	}
}

// File picks the colour of a regular file from its lowercased extension,
// falling back to EntryFile
func (t *Theme) File(ext string) Colour {
	switch strings.ToLower(ext) {
	case "rs", "rlib", "rmeta":
		return t.CodeRust
	case "py", "pyi", "pyc", "pyd", "pyo", "pyw", "pyx", "pxd", "whl":
		return t.CodePython
	case "js", "mjs", "cjs", "ts", "mts", "cts", "jsx", "tsx":
		return t.CodeJavaScript
	case "c", "h", "inl", "m", "cpp", "cc", "cxx", "c++", "hpp", "hh", "hxx", "h++", "mm":
		return t.CodeC
	case "go":
		return t.CodeGo
	case "java", "jar", "class", "war", "jad", "kt", "kts":
		return t.CodeJava
	case "rb", "rake", "gemspec", "erb", "slim":
		return t.CodeRuby
	case "php", "phar":
		return t.CodePHP
	case "lua", "luac", "luau":
		return t.CodeLua
	case "html", "htm", "xhtml":
		return t.WebHTML
	case "css", "scss", "sass", "less":
		return t.WebCSS
	case "json", "jsonc", "json5":
		return t.WebJSON
	case "xml", "xsd", "xsl":
		return t.WebXML
	case "yaml", "yml", "toml":
		return t.WebYAML
	case "txt", "log", "rst":
		return t.DocText
	case "md", "markdown", "mdx":
		return t.DocMarkdown
	case "pdf":
		return t.DocPDF
	case "png", "jpg", "jpeg", "gif", "bmp", "svg", "webp", "ico", "tiff", "avif":
		return t.MediaImage
	case "mp4", "mkv", "mov", "avi", "webm", "flv", "wmv":
		return t.MediaVideo
	case "mp3", "flac", "wav", "ogg", "m4a", "aac", "opus":
		return t.MediaAudio
	case "zip", "tar", "gz", "tgz", "xz", "bz2", "7z", "rar", "zst", "lz4":
		return t.Archive
	default:
		return t.EntryFile
	}
}

// Size picks a colour by the unit of a formatted size such as "1.2kB",
// "4MiB" or "512"
func (t *Theme) Size(text string) Colour {
	unit := strings.ToUpper(strings.TrimLeft(text, "0123456789. "))
	switch {
	case unit == "" || unit == "B":
		return t.SizeBytes
	case strings.HasPrefix(unit, "K"):
		return t.SizeKB
	case strings.HasPrefix(unit, "M"):
		return t.SizeMB
	default:
		return t.SizeGB
	}
}

// Age picks a colour by how long ago a timestamp was. Future times count
// as recent.
func (t *Theme) Age(age time.Duration) Colour {
	const day = 24 * time.Hour
	switch {
	case age < time.Hour:
		return t.DateRecent
	case age < day:
		return t.DateHours
	case age < 7*day:
		return t.DateDays
	case age < 30*day:
		return t.DateWeeks
	case age < 365*day:
		return t.DateMonths
	default:
		return t.DateOld
	}
}

// Permission picks the colour of one character of a permission string.
// The first character is the file type.
func (t *Theme) Permission(index int, c rune) Colour {
	if index == 0 {
		if c == '.' || c == '-' {
			return t.PermNone
		}
		return t.PermFiletype
	}
	switch c {
	case 'r':
		return t.PermRead
	case 'w':
		return t.PermWrite
	case 'x':
		return t.PermExecute
	case 's', 'S', 't', 'T':
		return t.PermSpecial
	case '@':
		return t.Xattr
	case '-':
		return t.PermNone
	default:
		return t.Numeric
	}
}
