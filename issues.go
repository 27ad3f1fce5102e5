package earkmodels

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMalformedXML         = "malformed_xml"
	CodeUnresolvedPrefix     = "unresolved_prefix"
	CodeRequired             = "required"
	CodeInvalidEnum          = "invalid_enum"
	CodeInvalidFormat        = "invalid_format"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeUnknownElement       = "unknown_element"
	CodeUnsupportedElement   = "unsupported_element"
	CodeDuplicateLang        = "duplicate_lang"
	CodeMissingDefaultLang   = "missing_default_lang"
	CodeUnsupportedVersion   = "unsupported_version"
	CodeNotFound             = "not_found"
)

// Issue represents a single structural or value violation found while
// mapping a document tree onto a typed model.
type Issue struct {
	// Path is the element path inside the document (for example:
	// /premis:premis/premis:object[1]).
	Path string `json:"path"`
	// Code is one of the codes listed above.
	Code    string `json:"code"`
	Message string `json:"message"`
	// Hint carries the valid set, the offending value, etc.
	Hint string `json:"hint,omitempty"`
	// Source names the originating document (file path or stream name).
	Source string `json:"source,omitempty"`
	Cause  error  `json:"-"`
	// Params carries structured parameters (e.g., {"expected":"3.0", "got":"2.2"})
	// for reporting and observability.
	Params map[string]any `json:"params,omitempty"`
}

// Issues is a collection of violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /premis:premis/premis:object[1]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Source != "" {
			fmt.Fprintf(b, " (%s)", it.Source)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// Merge folds the Issues carried by the given errors into one error. Nil
// entries are skipped and the result is nil when nothing remains, so mappers
// can accumulate every violation under an element before failing.
func Merge(errs ...error) error {
	var all Issues
	for _, e := range errs {
		if e == nil {
			continue
		}
		if iss, ok := AsIssues(e); ok {
			all = append(all, iss...)
			continue
		}
		all = append(all, Issue{Message: e.Error(), Cause: e})
	}
	if len(all) == 0 {
		return nil
	}
	return all
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether any issue in err carries the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
