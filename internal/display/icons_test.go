package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrison/cairn/internal/models"
)

func TestIconFor(t *testing.T) {
	emptyDir := models.NewDirectory("whatever", "/x/whatever")
	emptyDir.Children = models.ChildrenAbsent
	emptyGit := models.NewDirectory(".git", "/x/.git")
	emptyGit.Children = models.ChildrenAbsent

	tests := []struct {
		name  string
		entry models.Entry
		want  rune
	}{
		{"symlink to a file", models.NewSymlink("x.go", "/x/x.go", true, false), iconSymlink},
		{"symlink to a dir", models.NewSymlink("d", "/x/d", true, true), iconSymlink},
		{"empty directory", emptyDir, iconFolderOpen},
		{"empty wins over name", emptyGit, iconFolderOpen},
		{"named directory", models.NewDirectory(".git", "/x/.git"), '\ue5fb'},
		{"named directory any case", models.NewDirectory("Node_Modules", "/x/Node_Modules"), '\ue5fa'},
		{"plain directory", models.NewDirectory("stuff", "/x/stuff"), iconFolder},
		{"named file", models.NewFile(".gitignore", "/x/.gitignore"), iconGit},
		{"named file any case", models.NewFile("LICENSE", "/x/LICENSE"), iconLicense},
		{"extension", models.NewFile("song.MP3", "/x/song.MP3"), iconAudio},
		{"go source", models.NewFile("main.go", "/x/main.go"), iconGo},
		{"unknown extension", models.NewFile("blob.xyz", "/x/blob.xyz"), iconFile},
		{"no extension", models.NewFile("README", "/x/README"), iconFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IconFor(tt.entry))
		})
	}
}
