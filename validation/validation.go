// Package validation checks request payloads before they reach storage.
// Validators return every applicable error message, not just the first.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// requireString reports "<field> is required" when the field is absent or
// blank and "<field> must be a string" when it carries a non-string value.
func requireString(payload map[string]any, field string) []string {
	v, ok := payload[field]
	if !ok {
		return []string{field + " is required"}
	}
	s, ok := v.(string)
	if !ok {
		return []string{field + " must be a string"}
	}
	if strings.TrimSpace(s) == "" {
		return []string{field + " is required"}
	}
	return nil
}

func validSlug(payload map[string]any) []string {
	s, ok := payload["slug"].(string)
	if !ok {
		return nil
	}
	if !slugPattern.MatchString(strings.TrimSpace(s)) {
		return []string{"slug must contain only lowercase letters, numbers and hyphens"}
	}
	return nil
}

// ValidateContact checks a contact create/replace payload.
func ValidateContact(payload map[string]any) []string {
	var errs []string

	errs = append(errs, requireString(payload, "name")...)

	if emailErrs := requireString(payload, "email"); len(emailErrs) > 0 {
		errs = append(errs, emailErrs...)
	} else {
		email := strings.TrimSpace(payload["email"].(string))
		if !emailPattern.MatchString(email) {
			errs = append(errs, "email must be a valid email address")
		}
	}

	errs = append(errs, requireString(payload, "message")...)

	return errs
}

// ValidateProjectCreate checks a project create payload.
func ValidateProjectCreate(payload map[string]any) []string {
	var errs []string

	errs = append(errs, requireString(payload, "title")...)
	errs = append(errs, requireString(payload, "description")...)

	if slugErrs := requireString(payload, "slug"); len(slugErrs) > 0 {
		errs = append(errs, slugErrs...)
	} else {
		errs = append(errs, validSlug(payload)...)
	}

	return errs
}

// ValidateProjectUpdate checks only the fields present in the payload.
// Fields that are not updatable through validation (image, technologies,
// featured, stats) are coerced at storage time instead.
func ValidateProjectUpdate(payload map[string]any) []string {
	var errs []string

	for _, field := range []string{"title", "description"} {
		if _, ok := payload[field]; ok {
			errs = append(errs, requireString(payload, field)...)
		}
	}

	if _, ok := payload["slug"]; ok {
		if slugErrs := requireString(payload, "slug"); len(slugErrs) > 0 {
			errs = append(errs, slugErrs...)
		} else {
			errs = append(errs, validSlug(payload)...)
		}
	}

	return errs
}

var contactSortFields = map[string]bool{
	"id":         true,
	"name":       true,
	"email":      true,
	"message":    true,
	"created_at": true,
}

// ContactSort resolves a "field-direction" sort parameter against the
// allow-list of sortable contact columns. Client input never reaches the
// ORDER BY clause verbatim.
func ContactSort(raw string) (field, direction string, err error) {
	if raw == "" {
		return "created_at", "DESC", nil
	}

	i := strings.LastIndex(raw, "-")
	if i <= 0 || i == len(raw)-1 {
		return "", "", fmt.Errorf("sort must be of the form field-asc or field-desc")
	}

	field = raw[:i]
	direction = strings.ToLower(raw[i+1:])

	if !contactSortFields[field] {
		return "", "", fmt.Errorf("cannot sort contacts by %q", field)
	}
	if direction != "asc" && direction != "desc" {
		return "", "", fmt.Errorf("sort direction must be asc or desc")
	}

	return field, strings.ToUpper(direction), nil
}
