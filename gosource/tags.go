package gosource

import (
	"strings"

	"github.com/fatih/structtag"

	"github.com/teranos/tsgen/descriptor"
)

// fieldTags is what a struct tag says about one field
type fieldTags struct {
	annotations []descriptor.Annotation

	// nullable is set by omitempty/omitzero on a serializer tag
	nullable bool

	// drop removes the field from the descriptor entirely (tstype:"-")
	drop bool

	// jsonName is the json tag name, used to decide whether an embedded struct is flattened
	jsonName string
}

// parseFieldTags turns a raw struct tag into annotations, keeping the order
// in which the keys appear in the tag.
func parseFieldTags(raw string) (fieldTags, error) {
	var out fieldTags
	if raw == "" {
		return out, nil
	}

	tags, err := structtag.Parse(raw)
	if err != nil {
		return out, err
	}

	for _, tag := range tags.Tags() {
		switch tag.Key {
		case "json":
			if isSkip(tag) {
				out.annotations = append(out.annotations, descriptor.Annotation{ID: descriptor.AnnotationJSONIgnore})
				continue
			}
			if tag.Name != "" {
				out.jsonName = tag.Name
				out.annotations = append(out.annotations, descriptor.Annotation{ID: descriptor.AnnotationJSONName, Arg: tag.Name})
			}
			out.nullable = out.nullable || omits(tag)
		case "msgpack":
			if isSkip(tag) {
				out.annotations = append(out.annotations, descriptor.Annotation{ID: descriptor.AnnotationMsgpackIgnore})
				continue
			}
			if tag.Name != "" {
				out.annotations = append(out.annotations, descriptor.Annotation{ID: descriptor.AnnotationMsgpackKey, Arg: tag.Name})
			}
			out.nullable = out.nullable || omits(tag)
		case "tstype":
			if tag.Name == "-" {
				out.drop = true
			}
		}
	}
	return out, nil
}

// isSkip matches `json:"-"`; `json:"-,"` names the field "-"
func isSkip(tag *structtag.Tag) bool {
	return tag.Name == "-" && len(tag.Options) == 0
}

func omits(tag *structtag.Tag) bool {
	for _, opt := range tag.Options {
		switch strings.TrimSpace(opt) {
		case "omitempty", "omitzero":
			return true
		}
	}
	return false
}
