package typegen

// Result holds everything one engine run produced
type Result struct {
	// Language of the generator that produced Files
	Language string

	// Files in namespace group order
	Files []File

	Diagnostics []Diagnostic
}

// File is the rendered output for one namespace group
type File struct {
	Namespace  string
	ModulePath string

	// Path is relative to the output directory: <module-path>.<ext>
	Path    string
	Content string

	// Types lists the declared type names in discovery order
	Types []string

	// Imports is the group's namespace -> names table
	Imports map[string][]string
}

// Warnings returns the warning diagnostics
func (r *Result) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// TypeCount returns the number of declarations across all files
func (r *Result) TypeCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Types)
	}
	return n
}

// File returns the file generated for a namespace
func (r *Result) File(namespace string) (File, bool) {
	for _, f := range r.Files {
		if f.Namespace == namespace {
			return f, true
		}
	}
	return File{}, false
}
