// Package gosource discovers exported Go types with golang.org/x/tools/go/packages
// and describes them as descriptors for the typegen engine.
//
// Mapping:
//   - exported structs become PlainData; the first embedded struct becomes the base
//   - named string/integer types with typed constants become Enumerations
//   - //tsgen:type <expr> in a type's doc comment forces an override
//   - //tsgen:ignore skips a type
//   - json/msgpack struct tags become annotations, in tag order
package gosource

import (
	"context"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/teranos/tsgen/descriptor"
	"github.com/teranos/tsgen/errors"
	"github.com/teranos/tsgen/logger"
	"github.com/teranos/tsgen/typegen/util"
)

// Directive names recognized after //tsgen:
const (
	DirectiveType   = "type"
	DirectiveIgnore = "ignore"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
	packages.NeedTypes | packages.NeedTypesInfo

// Loader loads Go packages and produces type descriptors
type Loader struct {
	// Dir is the directory patterns are resolved in (the module root, usually)
	Dir string

	BuildTags []string

	// GoFlags are extra go command flags, e.g. "-mod=mod" or "-trimpath"
	GoFlags []string

	// Env overrides the environment of the underlying go command; nil inherits it
	Env []string

	logger *zap.SugaredLogger
}

// NewLoader creates a loader resolving patterns in dir
func NewLoader(dir string, buildTags []string) *Loader {
	return &Loader{
		Dir:       dir,
		BuildTags: buildTags,
		logger:    logger.ComponentLogger("gosource"),
	}
}

// Load loads the packages matching patterns (e.g. "./models/...") and returns
// descriptors in package order, then source order.
func (l *Loader) Load(ctx context.Context, patterns ...string) ([]descriptor.TypeDescriptor, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no package patterns given")
	}
	if l.logger == nil {
		l.logger = logger.ComponentLogger("gosource")
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     l.Dir,
		Env:     l.Env,
	}
	if len(l.BuildTags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(l.BuildTags, ",")}
	}
	cfg.BuildFlags = append(cfg.BuildFlags, l.GoFlags...)

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load packages %s", strings.Join(patterns, " "))
	}
	if len(pkgs) == 0 {
		return nil, errors.Newf("no packages found for %s", strings.Join(patterns, " "))
	}

	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, errors.WithHint(
				errors.Newf("package %s: %v", pkg.PkgPath, pkg.Errors[0]),
				"fix the compile errors first; types are read from the type checker")
		}
	}

	described := l.FromPackages(pkgs)
	l.logger.Infow("Loaded Go types",
		logger.FieldPackage, strings.Join(patterns, " "),
		logger.FieldCount, len(described))
	return described, nil
}

// FromPackages describes the exported types of already loaded packages.
// The packages need syntax and type information.
func (l *Loader) FromPackages(pkgs []*packages.Package) []descriptor.TypeDescriptor {
	if l.logger == nil {
		l.logger = logger.ComponentLogger("gosource")
	}
	enums := collectEnums(pkgs)

	isEnum := make(map[*types.TypeName]bool, len(enums))
	for obj := range enums {
		isEnum[obj] = true
	}
	conv := newConverter(isEnum)

	var out []descriptor.TypeDescriptor
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				gen, ok := decl.(*ast.GenDecl)
				if !ok || gen.Tok != token.TYPE {
					continue
				}
				for _, spec := range gen.Specs {
					ts := spec.(*ast.TypeSpec)
					doc := ts.Doc
					if doc == nil && len(gen.Specs) == 1 {
						doc = gen.Doc
					}
					if t, ok := l.describe(pkg, ts, doc, conv, enums); ok {
						out = append(out, t)
					}
				}
			}
		}
	}
	return out
}

func (l *Loader) describe(pkg *packages.Package, spec *ast.TypeSpec, doc *ast.CommentGroup, conv *converter, enums map[*types.TypeName][]descriptor.EnumLiteral) (descriptor.TypeDescriptor, bool) {
	if !spec.Name.IsExported() || spec.Assign.IsValid() {
		return descriptor.TypeDescriptor{}, false
	}

	obj, ok := pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return descriptor.TypeDescriptor{}, false
	}

	directives := util.Directives(doc)
	if _, ignore := directives[DirectiveIgnore]; ignore {
		l.logger.Debugw("Skipping ignored type", logger.FieldType, obj.Name())
		return descriptor.TypeDescriptor{}, false
	}

	t := descriptor.TypeDescriptor{
		Name:      obj.Name(),
		Namespace: pkg.PkgPath,
		Doc:       util.DocText(doc),
	}

	if override, ok := directives[DirectiveType]; ok && override != "" {
		t.Kind = descriptor.ExternallyConfigured
		t.Override = override
		return t, true
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return descriptor.TypeDescriptor{}, false
	}

	if literals, ok := enums[obj]; ok {
		t.Kind = descriptor.Enumeration
		t.Literals = literals
		return t, true
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		// Other named types are inlined where they are used
		return descriptor.TypeDescriptor{}, false
	}

	t.Kind = descriptor.PlainData
	if params := named.TypeParams(); params != nil {
		for i := range params.Len() {
			t.TypeParams = append(t.TypeParams, params.At(i).Obj().Name())
		}
	}
	t.Base, t.Members = l.members(t, st, conv)
	return t, true
}

func (l *Loader) members(t descriptor.TypeDescriptor, st *types.Struct, conv *converter) (*descriptor.TypeReference, []descriptor.MemberDescriptor) {
	var base *descriptor.TypeReference
	var members []descriptor.MemberDescriptor

	for i := range st.NumFields() {
		f := st.Field(i)

		tags, err := parseFieldTags(st.Tag(i))
		if err != nil {
			// encoding/json tolerates malformed tags; fall back to the conventional parser
			l.logger.Warnw("Malformed struct tag",
				logger.FieldType, t.QualifiedName(),
				logger.FieldMember, f.Name(),
				logger.FieldError, err)
			tags = legacyTags(st.Tag(i))
		}
		if tags.drop {
			continue
		}

		// Embedded structs without a json name are flattened by encoding/json
		if f.Embedded() && tags.jsonName == "" {
			if base == nil && isStructType(f.Type()) {
				ref, ok := conv.convert(derefType(f.Type()))
				if ok {
					base = &ref
					continue
				}
			}
			l.logger.Debugw("Skipping embedded field",
				logger.FieldType, t.QualifiedName(),
				logger.FieldMember, f.Name())
			continue
		}

		if !f.Exported() {
			continue
		}

		ref, ok := conv.convert(f.Type())
		if !ok {
			l.logger.Debugw("Skipping unserializable field",
				logger.FieldType, t.QualifiedName(),
				logger.FieldMember, f.Name())
			continue
		}

		members = append(members, descriptor.MemberDescriptor{
			Name:        f.Name(),
			Kind:        descriptor.Field,
			Type:        ref,
			Nullable:    tags.nullable,
			Annotations: tags.annotations,
		})
	}
	return base, members
}

// legacyTags reads json/msgpack keys with reflect.StructTag when structtag
// rejects the tag. Key order follows the fixed json, msgpack sequence.
func legacyTags(raw string) fieldTags {
	var out fieldTags
	st := reflect.StructTag(raw)

	add := func(key, ignoreID, nameID string) {
		value, ok := st.Lookup(key)
		if !ok {
			return
		}
		name, opts, _ := strings.Cut(value, ",")
		switch {
		case name == "-" && opts == "":
			out.annotations = append(out.annotations, descriptor.Annotation{ID: ignoreID})
			return
		case name != "":
			if key == "json" {
				out.jsonName = name
			}
			out.annotations = append(out.annotations, descriptor.Annotation{ID: nameID, Arg: name})
		}
		out.nullable = out.nullable || strings.Contains(opts, "omitempty") || strings.Contains(opts, "omitzero")
	}
	add("json", descriptor.AnnotationJSONIgnore, descriptor.AnnotationJSONName)
	add("msgpack", descriptor.AnnotationMsgpackIgnore, descriptor.AnnotationMsgpackKey)
	out.drop = st.Get("tstype") == "-"
	return out
}

func derefType(t types.Type) types.Type {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		return p.Elem()
	}
	return t
}

func isStructType(t types.Type) bool {
	_, ok := derefType(t).Underlying().(*types.Struct)
	return ok
}

// collectEnums finds named string/integer types that have typed constants,
// with the exported constants in source order.
func collectEnums(pkgs []*packages.Package) map[*types.TypeName][]descriptor.EnumLiteral {
	enums := make(map[*types.TypeName][]descriptor.EnumLiteral)

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				gen, ok := decl.(*ast.GenDecl)
				if !ok || gen.Tok != token.CONST {
					continue
				}
				for _, spec := range gen.Specs {
					for _, ident := range spec.(*ast.ValueSpec).Names {
						if !ident.IsExported() {
							continue
						}
						c, ok := pkg.TypesInfo.Defs[ident].(*types.Const)
						if !ok {
							continue
						}
						named, ok := types.Unalias(c.Type()).(*types.Named)
						if !ok || named.Obj().Pkg() != pkg.Types {
							continue
						}
						lit, ok := enumLiteral(c)
						if !ok {
							continue
						}
						obj := named.Obj()
						enums[obj] = append(enums[obj], lit)
					}
				}
			}
		}
	}
	return enums
}

func enumLiteral(c *types.Const) (descriptor.EnumLiteral, bool) {
	basic, ok := c.Type().Underlying().(*types.Basic)
	if !ok {
		return descriptor.EnumLiteral{}, false
	}

	switch {
	case basic.Info()&types.IsString != 0:
		return descriptor.EnumLiteral{Name: c.Name(), Value: constant.StringVal(c.Val()), IsString: true}, true
	case basic.Info()&types.IsInteger != 0:
		return descriptor.EnumLiteral{Name: c.Name(), Value: c.Val().ExactString()}, true
	default:
		return descriptor.EnumLiteral{}, false
	}
}
