package errors

import (
	"slices"
	"strings"
	"unicode"
)

// ValidateVertices checks the vertex count given on the command line or in
// an API request. It must be positive.
func ValidateVertices(v int) error {
	if v <= 0 {
		return New(ErrCodeInvalidVertices, "vertices must be > 0, got %d", v)
	}
	return nil
}

// ValidateEdges checks the requested edge count. It must not be negative.
func ValidateEdges(e int) error {
	if e < 0 {
		return New(ErrCodeInvalidEdges, "edges must be >= 0, got %d", e)
	}
	return nil
}

// ValidateSeed checks the PRNG seed. Zero is reserved as "unset".
func ValidateSeed(s uint64) error {
	if s == 0 {
		return New(ErrCodeInvalidSeed, "seed must be > 0")
	}
	return nil
}

// ValidateGenerator runs the vertex, edge and seed checks in flag order and
// returns the first failure.
func ValidateGenerator(vertices, edges int, seed uint64) error {
	if err := ValidateVertices(vertices); err != nil {
		return err
	}
	if err := ValidateEdges(edges); err != nil {
		return err
	}
	return ValidateSeed(seed)
}

// ValidateFormats checks that every entry of formats is one of allowed.
func ValidateFormats(formats, allowed []string) error {
	for _, f := range formats {
		if !slices.Contains(allowed, f) {
			return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", f, strings.Join(allowed, ", "))
		}
	}
	return nil
}

// ValidatePath validates an output or input file path supplied by a user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
