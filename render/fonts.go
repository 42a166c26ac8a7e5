package render

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
)

var (
	boldOnce sync.Once
	bold     *truetype.Font
	boldErr  error
)

// boldFont returns the Go Bold face used for titles and labels.
func boldFont() (*truetype.Font, error) {
	boldOnce.Do(func() {
		bold, boldErr = truetype.Parse(gobold.TTF)
	})
	return bold, boldErr
}
