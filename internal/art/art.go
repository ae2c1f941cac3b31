// Package art turns card images into ANSI terminal art.
package art

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Default art size in terminal cells.
const (
	DefaultWidth  = 40
	DefaultHeight = 32
)

// Extensions searched for card images, in priority order.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// FindImage looks for <id>.<ext> in imagesDir.
func FindImage(imagesDir, id string) (string, error) {
	if imagesDir == "" {
		return "", fmt.Errorf("no images directory configured")
	}
	// Ids are dataset values; keep them from escaping the directory.
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("invalid card id for image lookup: %q", id)
	}

	for _, ext := range Extensions {
		path := filepath.Join(imagesDir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no image found for card %s in %s", id, imagesDir)
}

// Load returns ANSI art for the image at imagePath, using a cached copy
// in cacheDir when one exists. An empty cacheDir disables caching.
func Load(imagePath, cacheDir string) (string, error) {
	if cacheDir == "" {
		return Generate(imagePath, DefaultWidth, DefaultHeight)
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
	}

	// Create a cache filename based on the image path
	cacheFilename := fmt.Sprintf("%x.ansi", md5.Sum([]byte(imagePath)))
	cachePath := filepath.Join(cacheDir, cacheFilename)

	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	ansiArt, err := Generate(imagePath, DefaultWidth, DefaultHeight)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(cachePath, []byte(ansiArt), 0644); err != nil {
		return "", fmt.Errorf("failed to write ANSI art to file: %w", err)
	}
	return ansiArt, nil
}

// Generate decodes the image file and converts it to ANSI art of the
// given size in cells.
func Generate(imagePath string, width, height int) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	return ImageToAnsi(img, width, height), nil
}

// ImageToAnsi renders img with upper half block characters: each cell
// shows two pixel rows, the top as foreground and the bottom as background.
func ImageToAnsi(img image.Image, width, height int) string {
	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder

	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			// The four pixels that make up one character cell
			col1, _ := colorful.MakeColor(getColorAt(resized, x, y))
			col2, _ := colorful.MakeColor(getColorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(getColorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(getColorAt(resized, x+1, y+1))

			fg := averageColor(col1, col2)
			bg := averageColor(col3, col4)

			buffer.WriteString(ansiCell('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255} // black for out-of-bounds
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

// ansiCell formats a character with 24-bit foreground and background colours
func ansiCell(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}
