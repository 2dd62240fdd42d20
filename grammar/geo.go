package grammar

import (
	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/parse"
)

var (
	geographyPrefix = parse.Fold("geography")
	geometryPrefix  = parse.Fold("geometry")

	sridKeyword         = parse.Fold("SRID")
	collectionOpen      = parse.Fold("Collection(")
	lineStringKeyword   = parse.Fold("LineString")
	multiLineStringOpen = parse.Fold("MultiLineString(")
	multiPointOpen      = parse.Fold("MultiPoint(")
	multiPolygonOpen    = parse.Fold("MultiPolygon(")
	pointKeyword        = parse.Fold("Point")
	polygonKeyword      = parse.Fold("Polygon")
)

// quotedGeoNode is the layout shared by every prefixed geo literal.
type quotedGeoNode[F any] interface {
	~struct {
		Prefix parse.Token
		Open   parse.Token
		Value  *F
		Close  parse.Token
	}
}

func quotedGeo[N quotedGeoNode[F], F any](prefix parse.Parser[token], full parse.Parser[*F]) parse.Parser[*N] {
	return func(c parse.Cursor) parse.Result[*N] {
		s := parse.Begin(c)
		n := N(struct {
			Prefix parse.Token
			Open   parse.Token
			Value  *F
			Close  parse.Token
		}{
			Prefix: parse.Step(&s, prefix),
			Open:   parse.Step(&s, squote),
			Value:  parse.Step(&s, full),
			Close:  parse.Step(&s, squote),
		})

		return parse.End(&s, &n)
	}
}

type fullGeoNode[L any] interface {
	~struct {
		SRID    *cst.SRIDLiteral
		Literal *L
	}
}

func fullGeo[N fullGeoNode[L], L any](shape parse.Parser[*L]) parse.Parser[*N] {
	return func(c parse.Cursor) parse.Result[*N] {
		s := parse.Begin(c)
		n := N(struct {
			SRID    *cst.SRIDLiteral
			Literal *L
		}{
			SRID:    parse.Maybe(&s, sridLiteral),
			Literal: parse.Step(&s, shape),
		})

		return parse.End(&s, &n)
	}
}

var (
	fullCollectionLiteral      = fullGeo[cst.FullCollectionLiteral](collectionLiteral)
	fullLineStringLiteral      = fullGeo[cst.FullLineStringLiteral](lineStringLiteral)
	fullMultiLineStringLiteral = fullGeo[cst.FullMultiLineStringLiteral](multiLineStringLiteral)
	fullMultiPointLiteral      = fullGeo[cst.FullMultiPointLiteral](multiPointLiteral)
	fullMultiPolygonLiteral    = fullGeo[cst.FullMultiPolygonLiteral](multiPolygonLiteral)
	fullPointLiteral           = fullGeo[cst.FullPointLiteral](pointLiteral)
	fullPolygonLiteral         = fullGeo[cst.FullPolygonLiteral](polygonLiteral)

	geographyCollection      = quotedGeo[cst.GeographyCollection](geographyPrefix, fullCollectionLiteral)
	geographyLineString      = quotedGeo[cst.GeographyLineString](geographyPrefix, fullLineStringLiteral)
	geographyMultiLineString = quotedGeo[cst.GeographyMultiLineString](geographyPrefix, fullMultiLineStringLiteral)
	geographyMultiPoint      = quotedGeo[cst.GeographyMultiPoint](geographyPrefix, fullMultiPointLiteral)
	geographyMultiPolygon    = quotedGeo[cst.GeographyMultiPolygon](geographyPrefix, fullMultiPolygonLiteral)
	geographyPoint           = quotedGeo[cst.GeographyPoint](geographyPrefix, fullPointLiteral)
	geographyPolygon         = quotedGeo[cst.GeographyPolygon](geographyPrefix, fullPolygonLiteral)

	geometryCollection      = quotedGeo[cst.GeometryCollection](geometryPrefix, fullCollectionLiteral)
	geometryLineString      = quotedGeo[cst.GeometryLineString](geometryPrefix, fullLineStringLiteral)
	geometryMultiLineString = quotedGeo[cst.GeometryMultiLineString](geometryPrefix, fullMultiLineStringLiteral)
	geometryMultiPoint      = quotedGeo[cst.GeometryMultiPoint](geometryPrefix, fullMultiPointLiteral)
	geometryMultiPolygon    = quotedGeo[cst.GeometryMultiPolygon](geometryPrefix, fullMultiPolygonLiteral)
	geometryPoint           = quotedGeo[cst.GeometryPoint](geometryPrefix, fullPointLiteral)
	geometryPolygon         = quotedGeo[cst.GeometryPolygon](geometryPrefix, fullPolygonLiteral)
)

func sridLiteral(c parse.Cursor) parse.Result[*cst.SRIDLiteral] {
	s := parse.Begin(c)
	n := &cst.SRIDLiteral{
		Keyword: parse.Step(&s, sridKeyword),
		Eq:      parse.Step(&s, eq),
		Digits:  parse.Times(&s, digit, 1, 5),
		Semi:    parse.Step(&s, semi),
	}

	return parse.End(&s, n)
}

// geoLiteral recurses through collections, so it counts against the depth
// limit.
func geoLiteral(c parse.Cursor) parse.Result[*cst.GeoLiteral] {
	if !c.Enter() {
		return parse.Fail[*cst.GeoLiteral](c)
	}
	defer c.Leave()

	var rest parse.Cursor

	n := new(cst.GeoLiteral)

	switch {
	case parse.Try(c, &rest, &n.Collection, collectionLiteral):
	case parse.Try(c, &rest, &n.LineString, lineStringLiteral):
	case parse.Try(c, &rest, &n.MultiPoint, multiPointLiteral):
	case parse.Try(c, &rest, &n.MultiLineString, multiLineStringLiteral):
	case parse.Try(c, &rest, &n.MultiPolygon, multiPolygonLiteral):
	case parse.Try(c, &rest, &n.Point, pointLiteral):
	case parse.Try(c, &rest, &n.Polygon, polygonLiteral):
	default:
		return parse.Fail[*cst.GeoLiteral](c)
	}

	return parse.Ok(n, rest)
}

func collectionLiteral(c parse.Cursor) parse.Result[*cst.CollectionLiteral] {
	s := parse.Begin(c)
	n := &cst.CollectionLiteral{
		Keyword: parse.Step(&s, collectionOpen),
		First:   parse.Step(&s, geoLiteral),
		Rest:    parse.Star(&s, geoLiteralTail),
		Close:   parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func geoLiteralTail(c parse.Cursor) parse.Result[cst.GeoLiteralTail] {
	s := parse.Begin(c)
	n := cst.GeoLiteralTail{
		Comma: parse.Step(&s, comma),
		Value: parse.Step(&s, geoLiteral),
	}

	return parse.End(&s, n)
}

func lineStringLiteral(c parse.Cursor) parse.Result[*cst.LineStringLiteral] {
	s := parse.Begin(c)
	n := &cst.LineStringLiteral{
		Keyword: parse.Step(&s, lineStringKeyword),
		Data:    parse.Step(&s, lineStringData),
	}

	return parse.End(&s, n)
}

func lineStringData(c parse.Cursor) parse.Result[*cst.LineStringData] {
	s := parse.Begin(c)
	n := &cst.LineStringData{
		Open:  parse.Step(&s, lparen),
		First: parse.Step(&s, positionLiteral),
		Rest:  parse.Times(&s, positionTail, 1, parse.Unbounded),
		Close: parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func positionTail(c parse.Cursor) parse.Result[cst.PositionTail] {
	s := parse.Begin(c)
	n := cst.PositionTail{
		Comma:    parse.Step(&s, comma),
		Position: parse.Step(&s, positionLiteral),
	}

	return parse.End(&s, n)
}

func multiLineStringLiteral(c parse.Cursor) parse.Result[*cst.MultiLineStringLiteral] {
	s := parse.Begin(c)
	n := &cst.MultiLineStringLiteral{Keyword: parse.Step(&s, multiLineStringOpen)}

	if n.First = parse.Maybe(&s, lineStringData); n.First != nil {
		n.Rest = parse.Star(&s, func(c parse.Cursor) parse.Result[cst.LineStringDataTail] {
			s := parse.Begin(c)
			t := cst.LineStringDataTail{
				Comma: parse.Step(&s, comma),
				Data:  parse.Step(&s, lineStringData),
			}

			return parse.End(&s, t)
		})
	}

	n.Close = parse.Step(&s, rparen)

	return parse.End(&s, n)
}

func multiPointLiteral(c parse.Cursor) parse.Result[*cst.MultiPointLiteral] {
	s := parse.Begin(c)
	n := &cst.MultiPointLiteral{Keyword: parse.Step(&s, multiPointOpen)}

	if n.First = parse.Maybe(&s, pointData); n.First != nil {
		n.Rest = parse.Star(&s, func(c parse.Cursor) parse.Result[cst.PointDataTail] {
			s := parse.Begin(c)
			t := cst.PointDataTail{
				Comma: parse.Step(&s, comma),
				Data:  parse.Step(&s, pointData),
			}

			return parse.End(&s, t)
		})
	}

	n.Close = parse.Step(&s, rparen)

	return parse.End(&s, n)
}

func multiPolygonLiteral(c parse.Cursor) parse.Result[*cst.MultiPolygonLiteral] {
	s := parse.Begin(c)
	n := &cst.MultiPolygonLiteral{Keyword: parse.Step(&s, multiPolygonOpen)}

	if n.First = parse.Maybe(&s, polygonData); n.First != nil {
		n.Rest = parse.Star(&s, func(c parse.Cursor) parse.Result[cst.PolygonDataTail] {
			s := parse.Begin(c)
			t := cst.PolygonDataTail{
				Comma: parse.Step(&s, comma),
				Data:  parse.Step(&s, polygonData),
			}

			return parse.End(&s, t)
		})
	}

	n.Close = parse.Step(&s, rparen)

	return parse.End(&s, n)
}

func pointLiteral(c parse.Cursor) parse.Result[*cst.PointLiteral] {
	s := parse.Begin(c)
	n := &cst.PointLiteral{
		Keyword: parse.Step(&s, pointKeyword),
		Data:    parse.Step(&s, pointData),
	}

	return parse.End(&s, n)
}

func pointData(c parse.Cursor) parse.Result[*cst.PointData] {
	s := parse.Begin(c)
	n := &cst.PointData{
		Open:     parse.Step(&s, lparen),
		Position: parse.Step(&s, positionLiteral),
		Close:    parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func positionLiteral(c parse.Cursor) parse.Result[*cst.PositionLiteral] {
	s := parse.Begin(c)
	n := &cst.PositionLiteral{
		X:     parse.Step(&s, doubleValue),
		Space: parse.Step(&s, sp),
		Y:     parse.Step(&s, doubleValue),
	}

	if n.Z = parse.Maybe(&s, coordinate); n.Z != nil {
		n.M = parse.Maybe(&s, coordinate)
	}

	return parse.End(&s, n)
}

func coordinate(c parse.Cursor) parse.Result[*cst.Coordinate] {
	s := parse.Begin(c)
	n := &cst.Coordinate{
		Space: parse.Step(&s, sp),
		Value: parse.Step(&s, doubleValue),
	}

	return parse.End(&s, n)
}

func polygonLiteral(c parse.Cursor) parse.Result[*cst.PolygonLiteral] {
	s := parse.Begin(c)
	n := &cst.PolygonLiteral{
		Keyword: parse.Step(&s, polygonKeyword),
		Data:    parse.Step(&s, polygonData),
	}

	return parse.End(&s, n)
}

func polygonData(c parse.Cursor) parse.Result[*cst.PolygonData] {
	s := parse.Begin(c)
	n := &cst.PolygonData{
		Open:  parse.Step(&s, lparen),
		First: parse.Step(&s, ringLiteral),
		Rest:  parse.Star(&s, ringTail),
		Close: parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}

func ringTail(c parse.Cursor) parse.Result[cst.RingTail] {
	s := parse.Begin(c)
	n := cst.RingTail{
		Comma: parse.Step(&s, comma),
		Ring:  parse.Step(&s, ringLiteral),
	}

	return parse.End(&s, n)
}

func ringLiteral(c parse.Cursor) parse.Result[*cst.RingLiteral] {
	s := parse.Begin(c)
	n := &cst.RingLiteral{
		Open:  parse.Step(&s, lparen),
		First: parse.Step(&s, positionLiteral),
		Rest:  parse.Star(&s, positionTail),
		Close: parse.Step(&s, rparen),
	}

	return parse.End(&s, n)
}
