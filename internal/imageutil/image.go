// Package imageutil normalizes product image references into loadable URLs.
//
// This is a defensive utility: upstream records are inconsistent about both
// the field the image lives in and the format of the value, so every input
// maps to some valid URL string and nothing here ever fails.
package imageutil

import (
	"regexp"
	"strings"
)

// DefaultPlaceholder is used when no usable image value can be found.
const DefaultPlaceholder = "https://via.placeholder.com/400x400?text=No+Image"

// DefaultScheme is prepended to protocol-relative URLs when the caller does
// not configure one.
const DefaultScheme = "https"

// Options tweak resolution. Thumb is accepted but currently selects no
// variant; it is kept in the signature so callers can opt in once the
// backend serves size-specific URLs.
type Options struct {
	Placeholder string
	Scheme      string
	Thumb       bool
}

var (
	fullURLRe      = regexp.MustCompile(`(?i)^https?://`)
	doubleSchemeRe = regexp.MustCompile(`(?i)^https?://https?://`)
)

// Resolve normalizes whatever image value we get into a valid, loadable URL.
// Non-string and empty inputs fall back to the placeholder; everything else
// is passed through the normalization ladder below.
func Resolve(raw any, opts Options) string {
	fallback := opts.Placeholder
	if fallback == "" {
		fallback = DefaultPlaceholder
	}

	src, ok := raw.(string)
	if !ok || src == "" {
		return fallback
	}

	s := strings.TrimSpace(src)
	if s == "" {
		return fallback
	}

	// Already good (data URI or blob URL)
	if strings.HasPrefix(s, "data:") || strings.HasPrefix(s, "blob:") {
		return s
	}

	// Guard against double protocol like 'https://http://...' before the
	// fully-qualified check, otherwise the broken value passes through
	if doubleSchemeRe.MatchString(s) {
		return doubleSchemeRe.ReplaceAllString(s, "http://")
	}

	if fullURLRe.MatchString(s) {
		return s
	}

	// Protocol-relative -> prepend the configured scheme
	if strings.HasPrefix(s, "//") {
		scheme := opts.Scheme
		if scheme == "" {
			scheme = DefaultScheme
		}
		return scheme + ":" + s
	}

	// Local/public asset path: ensure exactly one leading slash
	return "/" + strings.TrimLeft(s, "/")
}

// imageFields is the ordered list of field names probed by ProductImage.
// It is a compatibility shim for inconsistent upstream records, not
// reflection; adjust if the API settles on one name.
var imageFields = []string{
	"imageUrl",
	"image_url",
	"image",
	"img",
	"imagePath",
	"image_path",
}

// ProductImage finds a product image in a raw catalog record, trying common
// field names in order. The first non-empty string wins; when nothing
// matches, the placeholder is returned via Resolve.
func ProductImage(record map[string]any, opts Options) string {
	for _, field := range imageFields {
		if v, ok := record[field].(string); ok && v != "" {
			return Resolve(v, opts)
		}
	}
	return Resolve("", opts)
}
