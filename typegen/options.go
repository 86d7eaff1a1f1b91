package typegen

import (
	"sort"
	"strings"

	"github.com/teranos/tsgen/descriptor"
	"github.com/teranos/tsgen/errors"
	"github.com/teranos/tsgen/typegen/util"
)

// NamingStyle transforms declared member names when no serializer annotation applies
type NamingStyle int

const (
	NamingNone NamingStyle = iota
	NamingCamel
	NamingPascal
	NamingSnake
)

var namingStyleNames = []string{"none", "camel", "pascal", "snake"}

func (n NamingStyle) String() string {
	if int(n) < 0 || int(n) >= len(namingStyleNames) {
		return "invalid"
	}
	return namingStyleNames[n]
}

// ParseNamingStyle maps "none", "camel", "pascal" or "snake" to a NamingStyle
func ParseNamingStyle(s string) (NamingStyle, error) {
	for i, name := range namingStyleNames {
		if strings.EqualFold(s, name) {
			return NamingStyle(i), nil
		}
	}
	return 0, errors.NewInvalidConfigError("unknown naming style %q (want one of %s)", s, strings.Join(namingStyleNames, ", "))
}

// Transform applies the style to a declared name
func (n NamingStyle) Transform(name string) string {
	switch n {
	case NamingCamel:
		return util.LowerFirst(name)
	case NamingPascal:
		return util.UpperFirst(name)
	case NamingSnake:
		return util.ToSnakeCase(name)
	default:
		return name
	}
}

// Serializer is the wire convention whose annotations control member names
type Serializer int

const (
	SerializerNone Serializer = iota
	SerializerJSON
	SerializerMessagePack
)

var serializerNames = []string{"none", "json", "msgpack"}

func (s Serializer) String() string {
	if int(s) < 0 || int(s) >= len(serializerNames) {
		return "invalid"
	}
	return serializerNames[s]
}

// ParseSerializer maps "none", "json" or "msgpack" to a Serializer.
// "messagepack" is accepted as an alias.
func ParseSerializer(s string) (Serializer, error) {
	if strings.EqualFold(s, "messagepack") {
		return SerializerMessagePack, nil
	}
	for i, name := range serializerNames {
		if strings.EqualFold(s, name) {
			return Serializer(i), nil
		}
	}
	return 0, errors.NewInvalidConfigError("unknown serializer %q (want one of %s)", s, strings.Join(serializerNames, ", "))
}

// NewLine is the line terminator written into generated files
type NewLine string

const (
	NewLineLF   NewLine = "\n"
	NewLineCRLF NewLine = "\r\n"
)

// ParseNewLine maps "lf" or "crlf" to a NewLine
func ParseNewLine(s string) (NewLine, error) {
	switch strings.ToLower(s) {
	case "lf":
		return NewLineLF, nil
	case "crlf":
		return NewLineCRLF, nil
	}
	return "", errors.NewInvalidConfigError("unknown newline %q (want lf or crlf)", s)
}

// ModulePathFunc maps a namespace to the module path used in import statements
// and output file names
type ModulePathFunc func(namespace string) string

var modulePathStrategies = map[string]ModulePathFunc{
	// namespace: "Acme.Geo" -> "Acme.Geo"
	"namespace": func(ns string) string { return ns },
	// last-segment: "github.com/acme/geo" -> "geo", "Acme.Geo" -> "Geo"
	"last-segment": func(ns string) string {
		if i := strings.LastIndexAny(ns, "./"); i >= 0 {
			return ns[i+1:]
		}
		return ns
	},
	// lowercase: "Acme.Geo" -> "acme.geo"
	"lowercase": strings.ToLower,
}

// ModulePathStrategies lists the built-in module path strategy names
func ModulePathStrategies() []string {
	names := make([]string, 0, len(modulePathStrategies))
	for name := range modulePathStrategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseModulePath returns the named built-in module path strategy
func ParseModulePath(name string) (ModulePathFunc, error) {
	if fn, ok := modulePathStrategies[strings.ToLower(name)]; ok {
		return fn, nil
	}
	return nil, errors.NewInvalidConfigError("unknown module path strategy %q (want one of %s)", name, strings.Join(ModulePathStrategies(), ", "))
}

// AnnotationVocabulary tells the member resolver which annotation IDs mean
// "ignore this member" and "serialize under this name" for each serializer.
// Built once per run; read-only afterwards.
type AnnotationVocabulary struct {
	ignore map[Serializer]map[string]bool
	name   map[Serializer]map[string]bool
}

// DefaultVocabulary knows the annotation IDs produced by the bundled front ends
func DefaultVocabulary() AnnotationVocabulary {
	return NewVocabulary(
		map[Serializer][]string{
			SerializerJSON:        {descriptor.AnnotationJSONIgnore},
			SerializerMessagePack: {descriptor.AnnotationMsgpackIgnore},
		},
		map[Serializer][]string{
			SerializerJSON:        {descriptor.AnnotationJSONName},
			SerializerMessagePack: {descriptor.AnnotationMsgpackKey},
		},
	)
}

// NewVocabulary builds a vocabulary from ignore and name annotation IDs per serializer
func NewVocabulary(ignore, name map[Serializer][]string) AnnotationVocabulary {
	v := AnnotationVocabulary{
		ignore: make(map[Serializer]map[string]bool),
		name:   make(map[Serializer]map[string]bool),
	}
	v.add(v.ignore, ignore)
	v.add(v.name, name)
	return v
}

func (v AnnotationVocabulary) add(dst map[Serializer]map[string]bool, src map[Serializer][]string) {
	for s, ids := range src {
		if dst[s] == nil {
			dst[s] = make(map[string]bool)
		}
		for _, id := range ids {
			dst[s][id] = true
		}
	}
}

// With returns a copy extended with additional IDs
func (v AnnotationVocabulary) With(ignore, name map[Serializer][]string) AnnotationVocabulary {
	out := NewVocabulary(nil, nil)
	v.add(out.ignore, v.list(v.ignore))
	v.add(out.name, v.list(v.name))
	out.add(out.ignore, ignore)
	out.add(out.name, name)
	return out
}

func (v AnnotationVocabulary) list(src map[Serializer]map[string]bool) map[Serializer][]string {
	out := make(map[Serializer][]string, len(src))
	for s, ids := range src {
		for id := range ids {
			out[s] = append(out[s], id)
		}
	}
	return out
}

// IsIgnore reports whether id is an ignore annotation of serializer s
func (v AnnotationVocabulary) IsIgnore(s Serializer, id string) bool {
	return v.ignore[s][id]
}

// IsName reports whether id is a name annotation of serializer s
func (v AnnotationVocabulary) IsName(s Serializer, id string) bool {
	return v.name[s][id]
}

// Options control one translation run. Use DefaultOptions or NewOptions;
// the zero value has no module path function.
type Options struct {
	NamingStyle NamingStyle
	Serializer  Serializer

	// Indent is the number of spaces per indentation level
	Indent  int
	NewLine NewLine

	ModulePath ModulePathFunc

	// NamespaceLess orders import statements; nil sorts lexicographically
	NamespaceLess func(a, b string) bool

	// Primitives overrides entries of the primitive kind table, e.g. "int64" -> "bigint"
	Primitives map[string]string

	// DateType replaces the target type of date/time primitives when set, e.g. "Date"
	DateType string

	Vocabulary AnnotationVocabulary

	// DedupeEnumLiterals drops repeated enumeration values (keeping the first)
	DedupeEnumLiterals bool

	// Parallelism bounds concurrent group translation; 0 means GOMAXPROCS
	Parallelism int
}

// DefaultOptions returns identity naming, JSON serializer, two-space indent, LF
// and namespace-named modules.
func DefaultOptions() Options {
	return Options{
		NamingStyle: NamingNone,
		Serializer:  SerializerJSON,
		Indent:      2,
		NewLine:     NewLineLF,
		ModulePath:  modulePathStrategies["namespace"],
		Vocabulary:  DefaultVocabulary(),
	}
}

// Settings is the textual form of Options as found in config files and flags.
// Empty strings keep the defaults; Indent is taken as given.
type Settings struct {
	NamingStyle        string
	Serializer         string
	Indent             int
	NewLine            string
	ModulePath         string
	DateType           string
	Primitives         map[string]string
	DedupeEnumLiterals bool
	Parallelism        int

	// Extra annotation IDs recognized on top of the defaults, keyed by serializer name
	IgnoreAnnotations map[string][]string
	NameAnnotations   map[string][]string
}

// NewOptions validates settings and converts them to Options.
// Every failure is an ErrInvalidConfig and is reported before translation starts.
func NewOptions(s Settings) (Options, error) {
	opts := DefaultOptions()
	var err error

	if s.NamingStyle != "" {
		if opts.NamingStyle, err = ParseNamingStyle(s.NamingStyle); err != nil {
			return Options{}, err
		}
	}
	if s.Serializer != "" {
		if opts.Serializer, err = ParseSerializer(s.Serializer); err != nil {
			return Options{}, err
		}
	}
	if s.NewLine != "" {
		if opts.NewLine, err = ParseNewLine(s.NewLine); err != nil {
			return Options{}, err
		}
	}
	if s.ModulePath != "" {
		if opts.ModulePath, err = ParseModulePath(s.ModulePath); err != nil {
			return Options{}, err
		}
	}

	if s.Indent < 0 {
		return Options{}, errors.NewInvalidConfigError("indent must be >= 0, got %d", s.Indent)
	}
	opts.Indent = s.Indent

	if s.Parallelism < 0 {
		return Options{}, errors.NewInvalidConfigError("parallelism must be >= 0, got %d", s.Parallelism)
	}
	opts.Parallelism = s.Parallelism

	for kind, target := range s.Primitives {
		if strings.TrimSpace(target) == "" {
			return Options{}, errors.NewInvalidConfigError("primitive %q maps to an empty type", kind)
		}
	}
	opts.Primitives = s.Primitives
	opts.DateType = s.DateType
	opts.DedupeEnumLiterals = s.DedupeEnumLiterals

	ignore, err := vocabularyIDs(s.IgnoreAnnotations)
	if err != nil {
		return Options{}, err
	}
	name, err := vocabularyIDs(s.NameAnnotations)
	if err != nil {
		return Options{}, err
	}
	if len(ignore) > 0 || len(name) > 0 {
		opts.Vocabulary = opts.Vocabulary.With(ignore, name)
	}

	return opts, nil
}

func vocabularyIDs(byName map[string][]string) (map[Serializer][]string, error) {
	if len(byName) == 0 {
		return nil, nil
	}
	out := make(map[Serializer][]string, len(byName))
	for name, ids := range byName {
		s, err := ParseSerializer(name)
		if err != nil {
			return nil, errors.Wrap(err, "annotations")
		}
		out[s] = append(out[s], ids...)
	}
	return out, nil
}

// Validate checks programmatically built options
func (o Options) Validate() error {
	if o.Indent < 0 {
		return errors.NewInvalidConfigError("indent must be >= 0, got %d", o.Indent)
	}
	if o.NewLine != NewLineLF && o.NewLine != NewLineCRLF {
		return errors.NewInvalidConfigError("newline must be LF or CRLF, got %q", string(o.NewLine))
	}
	if o.ModulePath == nil {
		return errors.NewInvalidConfigError("module path function is required")
	}
	if o.Parallelism < 0 {
		return errors.NewInvalidConfigError("parallelism must be >= 0, got %d", o.Parallelism)
	}
	if o.NamingStyle.String() == "invalid" {
		return errors.NewInvalidConfigError("invalid naming style %d", int(o.NamingStyle))
	}
	if o.Serializer.String() == "invalid" {
		return errors.NewInvalidConfigError("invalid serializer %d", int(o.Serializer))
	}
	return nil
}

// IndentString returns one level of indentation
func (o Options) IndentString() string {
	return strings.Repeat(" ", o.Indent)
}
