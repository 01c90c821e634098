package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrison/cairn/internal/layout"
	"github.com/harrison/cairn/internal/models"
)

func TestSelectOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *models.Options)
		want   []Column
	}{
		{
			name:   "no flags",
			mutate: func(o *models.Options) {},
			want:   []Column{Of(Name)},
		},
		{
			name:   "long alone",
			mutate: func(o *models.Options) { o.Long = true },
			want:   []Column{Of(Permissions), Of(Size), Of(User), Of(Modified), Of(Name)},
		},
		{
			name:   "long in tree mode drops name",
			mutate: func(o *models.Options) { o.Long = true; o.Tree = true },
			want:   []Column{Of(Permissions), Of(Size), Of(User), Of(Modified)},
		},
		{
			name: "long with overlapping flags keeps first position",
			mutate: func(o *models.Options) {
				o.Long = true
				o.Size = true
				o.Modified = true
				o.Group = true
			},
			want: []Column{Of(Permissions), Of(Size), Of(User), Of(Modified), Of(Group), Of(Name)},
		},
		{
			name: "individual flags follow declaration order",
			mutate: func(o *models.Options) {
				o.Accessed = true
				o.Inode = true
				o.Size = true
				o.Permission = true
			},
			want: []Column{Of(Size), Of(Permissions), Of(Inode), Of(Accessed), Of(Name)},
		},
		{
			name: "feature columns before inode",
			mutate: func(o *models.Options) {
				o.Mountpoint = true
				o.Inode = true
				o.Checksum = models.HashSHA256
				o.Magic = true
				o.Xattr = true
				o.ACL = true
				o.Context = true
			},
			want: []Column{
				Of(Magic), ChecksumOf(models.HashSHA256), Of(Xattr), Of(ACL),
				Of(Context), Of(Mountpoint), Of(Inode), Of(Name),
			},
		},
		{
			name: "every numeric column",
			mutate: func(o *models.Options) {
				o.BlockSize = true
				o.HardLinks = true
				o.Blocks = true
				o.Created = true
			},
			want: []Column{Of(Blocks), Of(HardLinks), Of(BlockSize), Of(Created), Of(Name)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := models.DefaultOptions()
			tt.mutate(&opts)
			first := Select(&opts)
			assert.Equal(t, tt.want, first)
			assert.Equal(t, first, Select(&opts), "selection must be deterministic")
		})
	}
}

func TestHeaders(t *testing.T) {
	assert.Equal(t, "inode", Of(Inode).Header())
	assert.Equal(t, "Block Size", Of(BlockSize).Header())
	assert.Equal(t, "HardLinks", Of(HardLinks).Header())
	assert.Equal(t, "ACL", Of(ACL).Header())
	assert.Equal(t, "SHA-256", ChecksumOf(models.HashSHA256).Header())
	assert.Equal(t, "CRC32", ChecksumOf(models.HashCRC32).Header())
	assert.Equal(t, "MD5", ChecksumOf(models.HashMD5).Header())
}

func TestAlignment(t *testing.T) {
	right := []Kind{Size, Modified, Created, Accessed, Inode, HardLinks, Blocks, BlockSize}
	left := []Kind{Name, Permissions, User, Group, Xattr, ACL, Context, Mountpoint, Checksum, Magic}

	for _, k := range right {
		assert.Equal(t, layout.AlignRight, Of(k).Alignment(), "%s", Of(k))
	}
	for _, k := range left {
		assert.Equal(t, layout.AlignLeft, Of(k).Alignment(), "%s", Of(k))
	}
}

func TestChecksumColumnsAreDistinctKeys(t *testing.T) {
	widths := Widths{
		ChecksumOf(models.HashMD5):    32,
		ChecksumOf(models.HashSHA256): 64,
	}
	assert.Len(t, widths, 2)
}

func TestNeedsPredicates(t *testing.T) {
	opts := models.DefaultOptions()
	assert.False(t, NeedsAlignment(&opts))

	opts.Oneline = true
	assert.False(t, NeedsMetadata(&opts))
	assert.True(t, NeedsTableColumn(&opts))
	assert.True(t, NeedsAlignment(&opts))

	opts = models.DefaultOptions()
	opts.HardLinks = true
	assert.True(t, NeedsMetadata(&opts))
	assert.False(t, NeedsTableColumn(&opts))

	opts = models.DefaultOptions()
	opts.Checksum = models.HashCRC32
	assert.True(t, NeedsTableColumn(&opts))
}
