package store

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"golang.org/x/text/cases"
)

// Filter selects records of a collection. The variants are Equals,
// SubstringAnyOf, ListContains and And.
type Filter interface {
	// BSON renders the filter as a MongoDB query document.
	BSON() bson.M
	// Match evaluates the filter against a stored record.
	Match(doc bson.Raw) bool
}

// Equals matches records whose field equals Value exactly. As in MongoDB, a
// list-typed field matches when Value is one of its elements.
type Equals struct {
	Field string
	Value string
}

func (f Equals) BSON() bson.M { return bson.M{f.Field: f.Value} }

func (f Equals) Match(doc bson.Raw) bool {
	for _, s := range stringValues(doc, f.Field) {
		if s == f.Value {
			return true
		}
	}
	return false
}

// ListContains matches records whose list field has Value as a member.
type ListContains struct {
	Field string
	Value string
}

func (f ListContains) BSON() bson.M { return bson.M{f.Field: f.Value} }

func (f ListContains) Match(doc bson.Raw) bool {
	return Equals(f).Match(doc)
}

// SubstringAnyOf matches records where Text occurs, ignoring case, in at least
// one of Fields. For list fields any element may contain it.
type SubstringAnyOf struct {
	Fields []string
	Text   string
}

func (f SubstringAnyOf) BSON() bson.M {
	pattern := regexp.QuoteMeta(f.Text)
	or := make(bson.A, 0, len(f.Fields))
	for _, field := range f.Fields {
		or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
	}
	return bson.M{"$or": or}
}

func (f SubstringAnyOf) Match(doc bson.Raw) bool {
	fold := cases.Fold()
	needle := fold.String(f.Text)
	for _, field := range f.Fields {
		for _, s := range stringValues(doc, field) {
			if strings.Contains(fold.String(s), needle) {
				return true
			}
		}
	}
	return false
}

// And matches records accepted by every filter in it. An empty And matches
// everything.
type And []Filter

func (f And) BSON() bson.M {
	switch len(f) {
	case 0:
		return bson.M{}
	case 1:
		return f[0].BSON()
	}
	all := make(bson.A, 0, len(f))
	for _, sub := range f {
		all = append(all, sub.BSON())
	}
	return bson.M{"$and": all}
}

func (f And) Match(doc bson.Raw) bool {
	for _, sub := range f {
		if !sub.Match(doc) {
			return false
		}
	}
	return true
}

// All is the filter matching every record.
var All = And{}

// stringValues returns the string value of field, or its string elements when
// the field holds an array.
func stringValues(doc bson.Raw, field string) []string {
	rv, err := doc.LookupErr(field)
	if err != nil {
		return nil
	}
	switch rv.Type {
	case bsontype.String:
		return []string{rv.StringValue()}
	case bsontype.Array:
		vals, err := rv.Array().Values()
		if err != nil {
			return nil
		}
		out := make([]string, 0, len(vals))
		for _, v := range vals {
			if s, ok := v.StringValueOK(); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
