package model

import (
	"regexp"
	"strings"

	apperrors "github.com/notnotrachit/GrowwwStocks/pkg/errors"
)

var (
	invalidNameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	symbolPattern    = regexp.MustCompile(`^[A-Za-z0-9.-]+$`)
)

// ValidateWatchlistName checks a user-supplied watchlist name.
func ValidateWatchlistName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "Watchlist name is required")
	}
	if len(trimmed) < 2 {
		return apperrors.New(apperrors.ErrCodeValidation, "Watchlist name must be at least 2 characters")
	}
	if len(trimmed) > 50 {
		return apperrors.New(apperrors.ErrCodeValidation, "Watchlist name must be less than 50 characters")
	}
	if invalidNameChars.MatchString(name) {
		return apperrors.New(apperrors.ErrCodeValidation, "Watchlist name contains invalid characters")
	}
	return nil
}

// ValidateSymbol checks a ticker symbol: letters, numbers, dots and hyphens,
// at most 10 characters.
func ValidateSymbol(symbol string) error {
	trimmed := strings.TrimSpace(symbol)
	if trimmed == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "Stock symbol is required")
	}
	if !symbolPattern.MatchString(trimmed) {
		return apperrors.New(apperrors.ErrCodeValidation, "Invalid stock symbol format")
	}
	if len(trimmed) > 10 {
		return apperrors.New(apperrors.ErrCodeValidation, "Stock symbol is too long")
	}
	return nil
}

// ValidateSearchQuery checks a free-text search query.
func ValidateSearchQuery(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "Search query is required")
	}
	if len(trimmed) > 100 {
		return apperrors.New(apperrors.ErrCodeValidation, "Search query is too long")
	}
	return nil
}
