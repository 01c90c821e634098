package models

import (
	"strings"
	"testing"
)

func TestDefaultOptions_Valid(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() = %v, want nil", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	negative := -1

	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr string
	}{
		{"bad sort", func(o *Options) { o.Sort = "colour" }, "invalid sort"},
		{"bad quote", func(o *Options) { o.QuoteName = "backtick" }, "invalid quote-name"},
		{"bad colours", func(o *Options) { o.Colours = "sometimes" }, "invalid colours"},
		{"bad checksum", func(o *Options) { o.Checksum = "sha1" }, "invalid checksum"},
		{"tree and recursive", func(o *Options) { o.Tree = true; o.Recursive = true }, "--tree and --recursive"},
		{"tree and find", func(o *Options) { o.Tree = true; o.Find = "*.go" }, "--tree and --find"},
		{"negative width", func(o *Options) { o.Width = &negative }, "width must be >= 0"},
		{"checksum ok", func(o *Options) { o.Checksum = HashSHA256 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsValidate_ListsChoicesWithoutEmpty(t *testing.T) {
	opts := DefaultOptions()
	opts.Checksum = "sha1"
	err := opts.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "crc32, md5, sha224") {
		t.Errorf("error %q does not list the algorithms", err)
	}
	if strings.Contains(err.Error(), ": , ") {
		t.Errorf("error %q lists the empty algorithm", err)
	}
}

func TestSortNeedsMetadata(t *testing.T) {
	for _, s := range []SortBy{SortSize, SortCreated, SortAccessed, SortModified, SortInode} {
		if !s.NeedsMetadata() {
			t.Errorf("%s.NeedsMetadata() = false", s)
		}
	}
	for _, s := range []SortBy{SortName, SortExtension} {
		if s.NeedsMetadata() {
			t.Errorf("%s.NeedsMetadata() = true", s)
		}
	}
}
