package imgarray

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ajroetker/go-jpeg2000"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Read decodes the image file at path into a 3-channel BGR Mat.
//
// A missing file yields an error wrapping ErrFileNotFound; any other open,
// read or format failure wraps ErrDecodeFailed. A decoded image with no
// pixels wraps ErrEmptyImage.
func Read(path string) (*Mat, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode decodes an image stream in any registered format into a
// 3-channel BGR Mat.
func Decode(r io.Reader) (*Mat, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	m, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", format, err)
	}
	return m, nil
}
