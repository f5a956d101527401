package gocert

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ValidateProfiles validates every profile in the built-in style table.
func ValidateProfiles() error {
	return validateProfiles(profiles)
}

func validateProfiles(ps map[Organization]StyleProfile) error {
	orgs := make([]Organization, 0, len(ps))
	for org := range ps {
		orgs = append(orgs, org)
	}
	slices.Sort(orgs)

	var errs []error
	for _, org := range orgs {
		if err := ps[org].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("profile %s: %w", org, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks the profile for structural issues and returns an error
// describing all problems found, or nil if the profile is usable.
func (p StyleProfile) Validate() error {
	var errs []string

	if p.CleanTemplate == "" {
		errs = append(errs, "clean template name is empty")
	}
	if p.StampedTemplate == "" {
		errs = append(errs, "stamped template name is empty")
	}
	if p.MainFont == "" {
		errs = append(errs, "main font is empty")
	}
	if p.TitleFont == "" {
		errs = append(errs, "title font is empty")
	}
	if p.SecondaryFont == "" {
		errs = append(errs, "secondary font is empty")
	}

	for _, f := range Fields {
		prefix := "field " + f.String()
		for _, e := range validateFieldSpec(p.Spec(f)) {
			errs = append(errs, prefix+": "+e)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func validateFieldSpec(spec FieldSpec) []string {
	var errs []string
	switch s := spec.(type) {
	case nil:
		errs = append(errs, "spec is nil")
	case SimpleField:
		if s.FontSize <= 0 {
			errs = append(errs, "font size must be positive")
		}
		if s.X < 0 || s.Y < 0 {
			errs = append(errs, "position is negative")
		}
	case OneLineField:
		errs = append(errs, validateSizes(s.MaxFontSize, s.MinFontSize)...)
		if s.MaxWidth <= 0 {
			errs = append(errs, "max width must be positive")
		}
	case BlockField:
		errs = append(errs, validateSizes(s.MaxFontSize, s.MinFontSize)...)
		if s.MaxWidth <= 0 {
			errs = append(errs, "max width must be positive")
		}
		if s.YEnd <= s.YStart {
			errs = append(errs, fmt.Sprintf("band is empty (y %d..%d)", s.YStart, s.YEnd))
		}
		if s.Align != AlignCenter && s.Align != AlignLeft {
			errs = append(errs, "unsupported alignment")
		}
	default:
		errs = append(errs, fmt.Sprintf("unsupported spec type %T", spec))
	}
	return errs
}

func validateSizes(maxSize, minSize int) []string {
	var errs []string
	if minSize <= 0 {
		errs = append(errs, "min font size must be positive")
	}
	if maxSize < minSize {
		errs = append(errs, fmt.Sprintf("max font size %d is below min font size %d", maxSize, minSize))
	}
	return errs
}
