package grammar

import (
	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/parse"
)

// Header and preference names are case-insensitive.
var (
	contentIDName       = parse.Fold("Content-ID")
	entityIDName        = parse.Fold("EntityID")
	isolationName       = parse.Fold("Isolation")
	maxVersionName      = parse.Fold("OData-MaxVersion")
	versionName         = parse.Fold("OData-Version")
	preferName          = parse.Fold("Prefer")
	odataHeaderPrefix   = parse.Fold("OData-")
	snapshot            = parse.Fold("snapshot")
	version40           = parse.Lit("4.0")
	version401          = parse.Lit("1")
	odataPrefPrefix     = parse.Fold("odata.")
	allowEntityRefsName = parse.Fold("allow-entityreferences")
	callbackName        = parse.Fold("callback")
	urlName             = parse.Fold("url")
	continueOnErrorName = parse.Fold("continue-on-error")
	includeAnnotsName   = parse.Fold("include-annotations")
	maxPageSizeName     = parse.Fold("maxpagesize")
	omitValuesName      = parse.Fold("omit-values")
	omitValuesValue     = parse.OneOf(true, "nulls", "defaults")
	respondAsyncName    = parse.Fold("respond-async")
	returnName          = parse.Fold("return")
	returnValue         = parse.OneOf(false, "representation", "minimal")
	trackChangesName    = parse.Fold("track-changes")
	waitName            = parse.Fold("wait")
	plainSemi           = parse.Lit(";")
	plainComma          = parse.Lit(",")

	iriChar      = parse.Class(setIRIChar)
	callbackChar = parse.Class(setCallback)
)

func header(c parse.Cursor) parse.Result[*cst.Header] {
	var rest parse.Cursor

	n := new(cst.Header)

	switch {
	case parse.Try(c, &rest, &n.ContentID, contentID):
	case parse.Try(c, &rest, &n.EntityID, entityID):
	case parse.Try(c, &rest, &n.Isolation, isolation):
	case parse.Try(c, &rest, &n.ODataMaxVersion, odataMaxVersion):
	case parse.Try(c, &rest, &n.ODataVersion, odataVersion):
	case parse.Try(c, &rest, &n.Prefer, prefer):
	default:
		return parse.Fail[*cst.Header](c)
	}

	return parse.Ok(n, rest)
}

func contentID(c parse.Cursor) parse.Result[*cst.ContentID] {
	s := parse.Begin(c)
	n := &cst.ContentID{
		Name:  parse.Step(&s, contentIDName),
		Colon: parse.Step(&s, plainColon),
		Space: parse.Step(&s, ows),
		Value: parse.Times(&s, unreserved, 1, parse.Unbounded),
	}

	return parse.End(&s, n)
}

func entityID(c parse.Cursor) parse.Result[*cst.EntityID] {
	s := parse.Begin(c)
	n := &cst.EntityID{
		Prefix: parse.Opt(&s, odataHeaderPrefix),
		Name:   parse.Step(&s, entityIDName),
		Colon:  parse.Step(&s, plainColon),
		Space:  parse.Step(&s, ows),
		IRI:    parse.Step(&s, iriInHeader),
	}

	return parse.End(&s, n)
}

func iriInHeader(c parse.Cursor) parse.Result[*cst.IRIInHeader] {
	s := parse.Begin(c)
	n := &cst.IRIInHeader{Chars: parse.Times(&s, iriChar, 1, parse.Unbounded)}

	return parse.End(&s, n)
}

func isolation(c parse.Cursor) parse.Result[*cst.Isolation] {
	s := parse.Begin(c)
	n := &cst.Isolation{
		Prefix: parse.Opt(&s, odataHeaderPrefix),
		Name:   parse.Step(&s, isolationName),
		Colon:  parse.Step(&s, plainColon),
		Space:  parse.Step(&s, ows),
		Value:  parse.Step(&s, snapshot),
	}

	return parse.End(&s, n)
}

func odataMaxVersion(c parse.Cursor) parse.Result[*cst.ODataMaxVersion] {
	s := parse.Begin(c)
	n := &cst.ODataMaxVersion{
		Name:  parse.Step(&s, maxVersionName),
		Colon: parse.Step(&s, plainColon),
		Space: parse.Step(&s, ows),
		Major: parse.Times(&s, digit, 1, parse.Unbounded),
		Dot:   parse.Step(&s, dot),
		Minor: parse.Times(&s, digit, 1, parse.Unbounded),
	}

	return parse.End(&s, n)
}

func odataVersion(c parse.Cursor) parse.Result[*cst.ODataVersion] {
	s := parse.Begin(c)
	n := &cst.ODataVersion{
		Name:    parse.Step(&s, versionName),
		Colon:   parse.Step(&s, plainColon),
		Space:   parse.Step(&s, ows),
		Version: parse.Step(&s, version40),
		Minor:   parse.Opt(&s, version401),
	}

	return parse.End(&s, n)
}

func prefer(c parse.Cursor) parse.Result[*cst.Prefer] {
	s := parse.Begin(c)
	n := &cst.Prefer{
		Name:  parse.Step(&s, preferName),
		Colon: parse.Step(&s, plainColon),
		Space: parse.Step(&s, ows),
		First: parse.Step(&s, preference),
		Rest:  parse.Star(&s, preferenceTail),
	}

	return parse.End(&s, n)
}

func preferenceTail(c parse.Cursor) parse.Result[cst.PreferenceTail] {
	s := parse.Begin(c)
	n := cst.PreferenceTail{
		Lead:       parse.Step(&s, ows),
		Comma:      parse.Step(&s, plainComma),
		Trail:      parse.Step(&s, ows),
		Preference: parse.Step(&s, preference),
	}

	return parse.End(&s, n)
}

func preference(c parse.Cursor) parse.Result[*cst.Preference] {
	var rest parse.Cursor

	n := new(cst.Preference)

	switch {
	case parse.Try(c, &rest, &n.AllowEntityReferences, allowEntityReferencesPreference):
	case parse.Try(c, &rest, &n.Callback, callbackPreference):
	case parse.Try(c, &rest, &n.ContinueOnError, continueOnErrorPreference):
	case parse.Try(c, &rest, &n.IncludeAnnotations, includeAnnotationsPreference):
	case parse.Try(c, &rest, &n.MaxPageSize, maxPageSizePreference):
	case parse.Try(c, &rest, &n.OmitValues, omitValuesPreference):
	case parse.Try(c, &rest, &n.RespondAsync, respondAsyncPreference):
	case parse.Try(c, &rest, &n.Return, returnPreference):
	case parse.Try(c, &rest, &n.TrackChanges, trackChangesPreference):
	case parse.Try(c, &rest, &n.Wait, waitPreference):
	default:
		return parse.Fail[*cst.Preference](c)
	}

	return parse.Ok(n, rest)
}

func eqH(c parse.Cursor) parse.Result[*cst.EqH] {
	s := parse.Begin(c)
	n := &cst.EqH{
		Lead:  parse.Step(&s, ows),
		Eq:    parse.Step(&s, eq),
		Trail: parse.Step(&s, ows),
	}

	return parse.End(&s, n)
}

func flagPreference(c parse.Cursor, name parse.Parser[token]) parse.Result[*cst.FlagPreference] {
	s := parse.Begin(c)
	n := &cst.FlagPreference{
		Prefix: parse.Opt(&s, odataPrefPrefix),
		Name:   parse.Step(&s, name),
	}

	return parse.End(&s, n)
}

func allowEntityReferencesPreference(c parse.Cursor) parse.Result[*cst.AllowEntityReferencesPreference] {
	return parse.As(flagPreference(c, allowEntityRefsName),
		func(v *cst.FlagPreference) *cst.AllowEntityReferencesPreference {
			return (*cst.AllowEntityReferencesPreference)(v)
		})
}

func trackChangesPreference(c parse.Cursor) parse.Result[*cst.TrackChangesPreference] {
	return parse.As(flagPreference(c, trackChangesName),
		func(v *cst.FlagPreference) *cst.TrackChangesPreference {
			return (*cst.TrackChangesPreference)(v)
		})
}

func respondAsyncPreference(c parse.Cursor) parse.Result[*cst.RespondAsyncPreference] {
	return parse.As(respondAsyncName(c), func(t token) *cst.RespondAsyncPreference {
		return &cst.RespondAsyncPreference{Name: t}
	})
}

func callbackPreference(c parse.Cursor) parse.Result[*cst.CallbackPreference] {
	s := parse.Begin(c)
	n := &cst.CallbackPreference{
		Prefix: parse.Opt(&s, odataPrefPrefix),
		Name:   parse.Step(&s, callbackName),
		Lead:   parse.Step(&s, ows),
		Semi:   parse.Step(&s, plainSemi),
		Trail:  parse.Step(&s, ows),
		URL:    parse.Step(&s, urlName),
		Eq:     parse.Step(&s, eqH),
		Open:   parse.Step(&s, dquote),
		Target: parse.Step(&s, callbackURL),
		Close:  parse.Step(&s, dquote),
	}

	return parse.End(&s, n)
}

func callbackURL(c parse.Cursor) parse.Result[*cst.CallbackURL] {
	s := parse.Begin(c)
	n := &cst.CallbackURL{Chars: parse.Times(&s, callbackChar, 1, parse.Unbounded)}

	return parse.End(&s, n)
}

func continueOnErrorPreference(c parse.Cursor) parse.Result[*cst.ContinueOnErrorPreference] {
	s := parse.Begin(c)
	n := &cst.ContinueOnErrorPreference{
		Prefix: parse.Opt(&s, odataPrefPrefix),
		Name:   parse.Step(&s, continueOnErrorName),
		Value:  parse.Maybe(&s, preferenceBoolean),
	}

	return parse.End(&s, n)
}

func preferenceBoolean(c parse.Cursor) parse.Result[*cst.PreferenceBoolean] {
	s := parse.Begin(c)
	n := &cst.PreferenceBoolean{
		Eq:    parse.Step(&s, eqH),
		Value: parse.Step(&s, booleanValue),
	}

	return parse.End(&s, n)
}

func includeAnnotationsPreference(c parse.Cursor) parse.Result[*cst.IncludeAnnotationsPreference] {
	s := parse.Begin(c)
	n := &cst.IncludeAnnotationsPreference{
		Prefix: parse.Opt(&s, odataPrefPrefix),
		Name:   parse.Step(&s, includeAnnotsName),
		Eq:     parse.Step(&s, eqH),
		Open:   parse.Step(&s, dquote),
		List:   parse.Step(&s, annotationsList),
		Close:  parse.Step(&s, dquote),
	}

	return parse.End(&s, n)
}

func annotationsList(c parse.Cursor) parse.Result[*cst.AnnotationsList] {
	s := parse.Begin(c)
	n := &cst.AnnotationsList{
		First: parse.Step(&s, annotationIdentifier),
		Rest:  parse.Star(&s, annotationIdentifierTail),
	}

	return parse.End(&s, n)
}

func annotationIdentifierTail(c parse.Cursor) parse.Result[cst.AnnotationIdentifierTail] {
	s := parse.Begin(c)
	n := cst.AnnotationIdentifierTail{
		Comma:      parse.Step(&s, comma),
		Identifier: parse.Step(&s, annotationIdentifier),
	}

	return parse.End(&s, n)
}

func annotationIdentifier(c parse.Cursor) parse.Result[*cst.AnnotationIdentifier] {
	s := parse.Begin(c)
	n := &cst.AnnotationIdentifier{Exclude: parse.Opt(&s, dash)}

	if n.Star = parse.Opt(&s, star); n.Star == nil {
		n.Term = parse.Step(&s, annotationTerm)
	}

	n.Qualifier = parse.Maybe(&s, annotationIdentifierQualifier)

	return parse.End(&s, n)
}

func annotationTerm(c parse.Cursor) parse.Result[*cst.AnnotationTerm] {
	s := parse.Begin(c)
	n := &cst.AnnotationTerm{
		Namespace: parse.Step(&s, namespace),
		Dot:       parse.Step(&s, dot),
	}

	if n.Term = parse.Maybe(&s, termName); n.Term == nil {
		n.Star = parse.Opt(&s, star)
		if n.Star == nil {
			s.Abort()
		}
	}

	return parse.End(&s, n)
}

func annotationIdentifierQualifier(c parse.Cursor) parse.Result[*cst.AnnotationIdentifierQualifier] {
	s := parse.Begin(c)
	n := &cst.AnnotationIdentifierQualifier{
		Hash:      parse.Step(&s, hash),
		Qualifier: parse.Step(&s, odataIdentifier),
	}

	return parse.End(&s, n)
}

func maxPageSizePreference(c parse.Cursor) parse.Result[*cst.MaxPageSizePreference] {
	s := parse.Begin(c)
	n := &cst.MaxPageSizePreference{
		Prefix: parse.Opt(&s, odataPrefPrefix),
		Name:   parse.Step(&s, maxPageSizeName),
		Eq:     parse.Step(&s, eqH),
		Lead:   parse.Step(&s, oneToNine),
		Digits: parse.Star(&s, digit),
	}

	return parse.End(&s, n)
}

func omitValuesPreference(c parse.Cursor) parse.Result[*cst.OmitValuesPreference] {
	s := parse.Begin(c)
	n := &cst.OmitValuesPreference{
		Name:  parse.Step(&s, omitValuesName),
		Eq:    parse.Step(&s, eqH),
		Value: parse.Step(&s, omitValuesValue),
	}

	return parse.End(&s, n)
}

func returnPreference(c parse.Cursor) parse.Result[*cst.ReturnPreference] {
	s := parse.Begin(c)
	n := &cst.ReturnPreference{
		Name:  parse.Step(&s, returnName),
		Eq:    parse.Step(&s, eqH),
		Value: parse.Step(&s, returnValue),
	}

	return parse.End(&s, n)
}

func waitPreference(c parse.Cursor) parse.Result[*cst.WaitPreference] {
	s := parse.Begin(c)
	n := &cst.WaitPreference{
		Name:   parse.Step(&s, waitName),
		Eq:     parse.Step(&s, eqH),
		Digits: parse.Times(&s, digit, 1, parse.Unbounded),
	}

	return parse.End(&s, n)
}
