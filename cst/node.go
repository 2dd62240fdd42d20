package cst

import (
	"io"
	"iter"
	"reflect"
	"strings"

	"github.com/ardnew/odatauri/parse"
)

// Token is a leaf of the tree.
type Token = parse.Token

var (
	tokenType      = reflect.TypeFor[Token]()
	repetitionType = reflect.TypeFor[parse.Repetition]()
)

// Leaves yields the tokens of node in input order.
func Leaves(node any) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		leaves(reflect.ValueOf(node), yield)
	}
}

func leaves(v reflect.Value, yield func(Token) bool) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return true
		}

		return leaves(v.Elem(), yield)

	case reflect.Slice:
		for i := range v.Len() {
			if !leaves(v.Index(i), yield) {
				return false
			}
		}

	case reflect.Struct:
		if v.Type() == tokenType {
			return yield(v.Interface().(Token))
		}

		if rep, ok := repetition(v); ok {
			for _, e := range rep.Elements() {
				if !leaves(reflect.ValueOf(e), yield) {
					return false
				}
			}

			return true
		}

		for i := range v.NumField() {
			if !v.Type().Field(i).IsExported() {
				continue
			}

			if !leaves(v.Field(i), yield) {
				return false
			}
		}
	}

	return true
}

func repetition(v reflect.Value) (parse.Repetition, bool) {
	if !v.Type().Implements(repetitionType) || !v.CanInterface() {
		return nil, false
	}

	return v.Interface().(parse.Repetition), true
}

// Write writes the input text matched by node to w.
func Write(w io.Writer, node any) error {
	var err error

	for t := range Leaves(node) {
		if _, err = io.WriteString(w, t.Text); err != nil {
			break
		}
	}

	return err
}

// Text returns the input text matched by node.
func Text(node any) string {
	var b strings.Builder

	for t := range Leaves(node) {
		b.WriteString(t.Text)
	}

	return b.String()
}

// Rule returns the node type name of node, or "" for tokens and nil.
func Rule(node any) string {
	t := reflect.TypeOf(node)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t == tokenType {
		return ""
	}

	return t.Name()
}

// Children yields the direct child nodes of node in grammar order, together
// with the name of the field holding each one. Tokens are yielded as
// [Token] values; repetitions and slices are flattened.
func Children(node any) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		v := reflect.ValueOf(node)
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return
			}

			v = v.Elem()
		}

		if v.Kind() != reflect.Struct || v.Type() == tokenType {
			return
		}

		for i := range v.NumField() {
			f := v.Type().Field(i)
			if f.IsExported() && !children(f.Name, v.Field(i), yield) {
				return
			}
		}
	}
}

func children(name string, v reflect.Value, yield func(string, any) bool) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return true
		}

		if v.Elem().Kind() == reflect.Struct && v.Elem().Type() != tokenType {
			if _, ok := repetition(v.Elem()); !ok {
				return yield(name, v.Interface())
			}
		}

		return children(name, v.Elem(), yield)

	case reflect.Slice:
		for i := range v.Len() {
			if !children(name, v.Index(i), yield) {
				return false
			}
		}

	case reflect.Struct:
		if rep, ok := repetition(v); ok {
			for _, e := range rep.Elements() {
				if !children(name, reflect.ValueOf(e), yield) {
					return false
				}
			}

			return true
		}

		return yield(name, v.Interface())
	}

	return true
}
