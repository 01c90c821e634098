package format

import (
	"time"

	"github.com/harrison/cairn/internal/layout"
	"github.com/harrison/cairn/internal/models"
)

// Settings holds the format choices for every formatter
type Settings struct {
	Size       models.SizeFormat
	Number     models.NumberFormat
	Date       models.DateFormat
	Ownership  models.OwnershipFormat
	Permission models.PermissionFormat
}

// SettingsFrom extracts the format choices from listing options
func SettingsFrom(opts *models.Options) Settings {
	return Settings{
		Size:       opts.SizeFormat,
		Number:     opts.NumberFormat,
		Date:       opts.DateFormat,
		Ownership:  opts.OwnershipFormat,
		Permission: opts.PermissionFormat,
	}
}

type permissionKey struct {
	mode  uint32
	xattr bool
}

// Cache memoizes formatted values by raw input for the lifetime of one
// render pass. It is owned by the renderer and not safe for concurrent use.
type Cache struct {
	settings Settings
	now      time.Time

	sizes       map[uint64]string
	numbers     map[uint64]string
	dates       map[int64]string
	permissions map[permissionKey]string
	users       map[uint32]string
	groups      map[uint32]string

	// Widths memoizes display widths of rendered strings
	Widths *layout.WidthCache
}

// NewCache creates an empty cache. Relative dates are computed against the
// moment the cache is created so one listing never mixes reference points.
func NewCache(settings Settings) *Cache {
	return &Cache{
		settings:    settings,
		now:         time.Now(),
		sizes:       make(map[uint64]string),
		numbers:     make(map[uint64]string),
		dates:       make(map[int64]string),
		permissions: make(map[permissionKey]string),
		users:       make(map[uint32]string),
		groups:      make(map[uint32]string),
		Widths:      layout.NewWidthCache(),
	}
}

// Settings returns the format choices the cache was built with
func (c *Cache) Settings() Settings {
	return c.settings
}

func (c *Cache) Size(bytes uint64) string {
	return memo(c.sizes, bytes, func() string { return Size(bytes, c.settings.Size) })
}

func (c *Cache) Number(n uint64) string {
	return memo(c.numbers, n, func() string { return Number(n, c.settings.Number) })
}

func (c *Cache) Date(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return memo(c.dates, t.UnixNano(), func() string { return Date(t, c.settings.Date, c.now) })
}

// Age is how long before the cache's reference time t lies
func (c *Cache) Age(t time.Time) time.Duration {
	return c.now.Sub(t)
}

func (c *Cache) Permission(mode uint32, hasXattr bool) string {
	key := permissionKey{mode: mode, xattr: hasXattr}
	return memo(c.permissions, key, func() string { return Permission(mode, hasXattr, c.settings.Permission) })
}

func (c *Cache) User(uid uint32) string {
	return memo(c.users, uid, func() string { return User(uid, c.settings.Ownership) })
}

func (c *Cache) Group(gid uint32) string {
	return memo(c.groups, gid, func() string { return Group(gid, c.settings.Ownership) })
}

func memo[K comparable](m map[K]string, key K, compute func() string) string {
	if v, ok := m[key]; ok {
		return v
	}
	v := compute()
	m[key] = v
	return v
}
