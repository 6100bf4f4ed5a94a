package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ImageCounts tallies what a compress run would see below a root.
type ImageCounts struct {
	// Images counts accepted files by lowercase extension.
	Images map[string]int
	// Skipped counts rejected files by lowercase extension ("" for none).
	Skipped map[string]int
	// Total is the number of files walked.
	Total int
}

// ImageTotal returns the number of files that would be encoded.
func (c ImageCounts) ImageTotal() int {
	n := 0
	for _, v := range c.Images {
		n += v
	}
	return n
}

// CountImages walks root and classifies every file with IsImage. If progress
// is non-nil it is called with the running total after each file.
func CountImages(root string, progress func(total int)) (ImageCounts, error) {
	counts := ImageCounts{
		Images:  map[string]int{},
		Skipped: map[string]int{},
	}
	info, err := os.Stat(root)
	if err != nil {
		return counts, err
	}
	if !info.IsDir() {
		return counts, ErrExpectedDirectory
	}
	for path, err := range Walk(root) {
		if err != nil {
			return counts, err
		}
		counts.Total++
		ext := strings.ToLower(filepath.Ext(path))
		if IsImage(path) {
			counts.Images[ext]++
		} else {
			counts.Skipped[ext]++
		}
		if progress != nil {
			progress(counts.Total)
		}
	}
	return counts, nil
}
