package display

import (
	"strings"

	"github.com/harrison/cairn/internal/models"
)

// Nerd Font code points
const (
	iconFile       = '\uf15b'
	iconFolder     = '\uf07b'
	iconFolderOpen = '\uf114'
	iconSymlink    = '\U000f1177'
	iconGit        = '\U000f02a2'
	iconLicense    = '\uf02d'
	iconNode       = '\ue718'
	iconShell      = '\uf489'
	iconDocker     = '\uf308'
	iconMake       = '\ue779'
	iconVideo      = '\uf03d'
	iconAudio      = '\uf001'
	iconImage      = '\uf1c5'
	iconArchive    = '\U000f05c4'
	iconFont       = '\uf031'
	iconConfig     = '\U000f0493'
	iconDatabase   = '\uf1c0'
	iconMarkdown   = '\uf48a'
	iconText       = '\uf15c'
	iconPDF        = '\uf1c1'
	iconGo         = '\ue627'
	iconRust       = '\ue7a8'
	iconPython     = '\ue606'
	iconJava       = '\ue738'
	iconJS         = '\ue74e'
	iconTS         = '\ue628'
	iconC          = '\ue61e'
	iconCPP        = '\ue61d'
	iconRuby       = '\ue791'
	iconHTML       = '\uf13b'
	iconCSS        = '\ue749'
	iconLock       = '\uf023'
	iconKey        = '\U000f0306'
)

var directoryIcons = map[string]rune{
	".git":         '\ue5fb',
	".github":      '\ue5fd',
	"node_modules": '\ue5fa',
	"src":          '\U000f107d',
	"build":        '\U000f19fc',
	"target":       '\U000f19fc',
	".config":      '\ue5fc',
	"config":       '\ue5fc',
	".ssh":         '\U000f08ac',
	"tests":        '\U000f0668',
	"test":         '\U000f0668',
	"downloads":    '\U000f024d',
	"documents":    '\U000f0c82',
	"music":        '\U000f1359',
	"pictures":     '\U000f024f',
	"home":         '\U000f10b5',
	".cache":       '\uf49b',
}

var filenameIcons = map[string]rune{
	".gitignore":         iconGit,
	".gitattributes":     iconGit,
	".gitmodules":        iconGit,
	"license":            iconLicense,
	"licence":            iconLicense,
	"copying":            iconLicense,
	"package.json":       iconNode,
	"package-lock.json":  iconNode,
	".bashrc":            iconShell,
	".bash_profile":      iconShell,
	".zshrc":             iconShell,
	".profile":           iconShell,
	"dockerfile":         iconDocker,
	"docker-compose.yml": iconDocker,
	"makefile":           iconMake,
	"go.mod":             iconGo,
	"go.sum":             iconGo,
	"cargo.toml":         iconRust,
	"cargo.lock":         iconRust,
	"id_rsa":             iconKey,
	"id_ed25519":         iconKey,
}

var extensionIcons = map[string]rune{
	"mp4": iconVideo, "mkv": iconVideo, "avi": iconVideo, "mov": iconVideo, "webm": iconVideo,
	"mp3": iconAudio, "flac": iconAudio, "wav": iconAudio, "ogg": iconAudio, "m4a": iconAudio,
	"png": iconImage, "jpg": iconImage, "jpeg": iconImage, "gif": iconImage, "svg": iconImage, "webp": iconImage, "bmp": iconImage,
	"zip": iconArchive, "tar": iconArchive, "gz": iconArchive, "xz": iconArchive, "bz2": iconArchive, "7z": iconArchive, "rar": iconArchive, "zst": iconArchive,
	"ttf": iconFont, "otf": iconFont, "woff": iconFont, "woff2": iconFont,
	"py": iconPython, "pyc": iconPython,
	"java": iconJava, "jar": iconJava, "class": iconJava,
	"md": iconMarkdown, "markdown": iconMarkdown,
	"txt": iconText, "log": iconText,
	"pdf":  iconPDF,
	"toml": iconConfig, "yaml": iconConfig, "yml": iconConfig, "ini": iconConfig, "conf": iconConfig, "cfg": iconConfig, "json": iconConfig,
	"sh": iconShell, "bash": iconShell, "zsh": iconShell, "fish": iconShell,
	"db": iconDatabase, "sqlite": iconDatabase, "sqlite3": iconDatabase, "sql": iconDatabase,
	"go": iconGo,
	"rs": iconRust,
	"js": iconJS, "mjs": iconJS, "cjs": iconJS,
	"ts": iconTS, "tsx": iconTS,
	"c": iconC, "h": iconC,
	"cpp": iconCPP, "cc": iconCPP, "hpp": iconCPP,
	"rb":   iconRuby,
	"html": iconHTML, "htm": iconHTML,
	"css": iconCSS, "scss": iconCSS,
	"lock": iconLock,
}

// IconFor picks the glyph shown before an entry's name
func IconFor(e models.Entry) rune {
	switch v := e.(type) {
	case *models.Symlink:
		return iconSymlink
	case *models.Directory:
		if v.Children == models.ChildrenAbsent {
			return iconFolderOpen
		}
		if icon, ok := directoryIcons[strings.ToLower(v.Name())]; ok {
			return icon
		}
		return iconFolder
	case *models.File:
		if icon, ok := filenameIcons[strings.ToLower(v.Name())]; ok {
			return icon
		}
		if icon, ok := extensionIcons[strings.ToLower(v.Extension)]; ok {
			return icon
		}
		return iconFile
	default:
		panic("display: unknown entry type")
	}
}
