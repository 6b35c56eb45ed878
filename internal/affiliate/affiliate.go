// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

package affiliate

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultTag is the MangaCompass associate tag applied when the
// caller does not supply one.
const DefaultTag = "mangacompass-20"

// ErrInvalidASIN is returned when an ASIN does not match the
// ten-character uppercase alphanumeric form.
var ErrInvalidASIN = errors.New("invalid ASIN")

// ErrEmptyTitle is returned by SearchLink when no title is given.
var ErrEmptyTitle = errors.New("title must not be empty")

var asinPattern = regexp.MustCompile(`^[A-Z0-9]{10}$`)

// Product URL patterns an ASIN can be extracted from.
var asinURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/dp/([A-Z0-9]{10})`),
	regexp.MustCompile(`(?i)/gp/product/([A-Z0-9]{10})`),
	regexp.MustCompile(`(?i)/exec/obidos/ASIN/([A-Z0-9]{10})`),
}

// ImageSize selects a product image resolution.
type ImageSize string

// Image sizes and their pixel widths.
const (
	ImageSmall  ImageSize = "S" // 75px
	ImageMedium ImageSize = "M" // 160px
	ImageLarge  ImageSize = "L" // 500px
)

func (s ImageSize) pixels() string {
	switch s {
	case ImageSmall:
		return "75"
	case ImageLarge:
		return "500"
	default:
		return "160"
	}
}

// ValidASIN reports whether asin has the canonical ten-character
// form.
func ValidASIN(asin string) bool {
	return asinPattern.MatchString(asin)
}

// ProductLink builds an affiliate product link for the ASIN. An empty
// tag selects DefaultTag.
func ProductLink(asin, tag string) (string, error) {
	if !ValidASIN(asin) {
		return "", fmt.Errorf("%w: %q", ErrInvalidASIN, asin)
	}
	if tag == "" {
		tag = DefaultTag
	}
	return fmt.Sprintf("https://www.amazon.co.jp/dp/%s?tag=%s", asin, tag), nil
}

// ExtractASIN pulls an ASIN out of an Amazon product URL. It
// recognizes /dp/, /gp/product/, and /exec/obidos/ASIN/ paths and
// returns the ASIN uppercased, or "" when none is found.
func ExtractASIN(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	for _, pattern := range asinURLPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	return ""
}

// keepParams are the query parameters AddTag preserves; everything
// else is stripped for a clean link.
var keepParams = []string{"tag", "keywords", "ie", "node"}

// AddTag sets the affiliate tag on an existing Amazon link, replacing
// any previous tag and dropping tracking clutter from the query.
// Non-Amazon and unparseable URLs are returned unchanged.
func AddTag(rawURL, tag string) string {
	if rawURL == "" {
		return ""
	}
	if tag == "" {
		tag = DefaultTag
	}

	u, err := url.Parse(rawURL)
	if err != nil || !strings.Contains(u.Hostname(), "amazon.co.jp") {
		return rawURL
	}

	query := u.Query()
	query.Set("tag", tag)

	cleaned := url.Values{}
	for _, param := range keepParams {
		if v := query.Get(param); v != "" {
			cleaned.Set(param, v)
		}
	}
	u.RawQuery = cleaned.Encode()

	return u.String()
}

// SearchLink builds an affiliate search link for a title, optionally
// narrowed by author.
func SearchLink(title, author, tag string) (string, error) {
	if title == "" {
		return "", ErrEmptyTitle
	}
	if tag == "" {
		tag = DefaultTag
	}

	query := title
	if author != "" {
		query = title + " " + author
	}

	return fmt.Sprintf("https://www.amazon.co.jp/s?k=%s&i=stripbooks&tag=%s",
		url.QueryEscape(query), tag), nil
}

// ImageURL builds the primary product image URL for the ASIN at the
// given size.
func ImageURL(asin string, size ImageSize) (string, error) {
	if !ValidASIN(asin) {
		return "", fmt.Errorf("%w: %q", ErrInvalidASIN, asin)
	}
	return fmt.Sprintf("https://m.media-amazon.com/images/P/%s.01._SL%s_.jpg", asin, size.pixels()), nil
}

// ImageURLs builds the product image URL in all three sizes.
func ImageURLs(asin string) (small, medium, large string, err error) {
	if small, err = ImageURL(asin, ImageSmall); err != nil {
		return "", "", "", err
	}
	medium, _ = ImageURL(asin, ImageMedium)
	large, _ = ImageURL(asin, ImageLarge)
	return small, medium, large, nil
}

// FallbackImageURLs lists alternative image hosts and formats to try
// when the primary URL 404s, most likely first.
func FallbackImageURLs(asin string, size ImageSize) []string {
	if !ValidASIN(asin) {
		return nil
	}
	px := size.pixels()
	return []string{
		fmt.Sprintf("https://m.media-amazon.com/images/P/%s.01._SL%s_.jpg", asin, px),
		fmt.Sprintf("https://images-na.ssl-images-amazon.com/images/P/%s.01._SL%s_.jpg", asin, px),
		fmt.Sprintf("https://images.amazon.com/images/P/%s.01._SL%s_.jpg", asin, px),
		fmt.Sprintf("https://m.media-amazon.com/images/P/%s.01._SL%s_", asin, px),
		fmt.Sprintf("https://m.media-amazon.com/images/P/%s.01.L.jpg", asin),
		fmt.Sprintf("https://m.media-amazon.com/images/P/%s.01._AC_SL%s_.jpg", asin, px),
	}
}

// IsAffiliateLink reports whether the URL is an Amazon link carrying
// an affiliate tag.
func IsAffiliateLink(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.Contains(u.Hostname(), "amazon") && u.Query().Get("tag") != ""
}

// Tag extracts the affiliate tag from a URL, or "" when absent.
func Tag(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("tag")
}
