package cst

import "github.com/ardnew/odatauri/parse"

// GeographyCollection is "geography" SQUOTE fullCollectionLiteral SQUOTE.
// The other geography and geometry literals share its layout.
type GeographyCollection struct {
	Prefix Token
	Open   Token
	Value  *FullCollectionLiteral
	Close  Token
}

type GeographyLineString struct {
	Prefix Token
	Open   Token
	Value  *FullLineStringLiteral
	Close  Token
}

type GeographyMultiLineString struct {
	Prefix Token
	Open   Token
	Value  *FullMultiLineStringLiteral
	Close  Token
}

type GeographyMultiPoint struct {
	Prefix Token
	Open   Token
	Value  *FullMultiPointLiteral
	Close  Token
}

type GeographyMultiPolygon struct {
	Prefix Token
	Open   Token
	Value  *FullMultiPolygonLiteral
	Close  Token
}

type GeographyPoint struct {
	Prefix Token
	Open   Token
	Value  *FullPointLiteral
	Close  Token
}

type GeographyPolygon struct {
	Prefix Token
	Open   Token
	Value  *FullPolygonLiteral
	Close  Token
}

// Geometry literals differ from geography literals only in their prefix.
type (
	GeometryCollection      GeographyCollection
	GeometryLineString      GeographyLineString
	GeometryMultiLineString GeographyMultiLineString
	GeometryMultiPoint      GeographyMultiPoint
	GeometryMultiPolygon    GeographyMultiPolygon
	GeometryPoint           GeographyPoint
	GeometryPolygon         GeographyPolygon
)

// SRIDLiteral is "SRID" EQ 1*5DIGIT SEMI.
type SRIDLiteral struct {
	Keyword Token
	Eq      Token
	Digits  parse.Range[Token]
	Semi    Token
}

// Full literals carry an optional spatial reference before the shape.
type (
	FullCollectionLiteral struct {
		SRID    *SRIDLiteral
		Literal *CollectionLiteral
	}
	FullLineStringLiteral struct {
		SRID    *SRIDLiteral
		Literal *LineStringLiteral
	}
	FullMultiLineStringLiteral struct {
		SRID    *SRIDLiteral
		Literal *MultiLineStringLiteral
	}
	FullMultiPointLiteral struct {
		SRID    *SRIDLiteral
		Literal *MultiPointLiteral
	}
	FullMultiPolygonLiteral struct {
		SRID    *SRIDLiteral
		Literal *MultiPolygonLiteral
	}
	FullPointLiteral struct {
		SRID    *SRIDLiteral
		Literal *PointLiteral
	}
	FullPolygonLiteral struct {
		SRID    *SRIDLiteral
		Literal *PolygonLiteral
	}
)

// GeoLiteral is any one shape.
type GeoLiteral struct {
	Collection      *CollectionLiteral
	LineString      *LineStringLiteral
	MultiPoint      *MultiPointLiteral
	MultiLineString *MultiLineStringLiteral
	MultiPolygon    *MultiPolygonLiteral
	Point           *PointLiteral
	Polygon         *PolygonLiteral
}

// CollectionLiteral is "Collection(" geoLiteral *( COMMA geoLiteral ) CLOSE.
type CollectionLiteral struct {
	Keyword Token
	First   *GeoLiteral
	Rest    []GeoLiteralTail
	Close   Token
}

type GeoLiteralTail struct {
	Comma Token
	Value *GeoLiteral
}

type LineStringLiteral struct {
	Keyword Token
	Data    *LineStringData
}

// LineStringData holds at least two positions.
type LineStringData struct {
	Open  Token
	First *PositionLiteral
	Rest  parse.Range[PositionTail]
	Close Token
}

type PositionTail struct {
	Comma    Token
	Position *PositionLiteral
}

// MultiLineStringLiteral may be empty.
type MultiLineStringLiteral struct {
	Keyword Token
	First   *LineStringData
	Rest    []LineStringDataTail
	Close   Token
}

type LineStringDataTail struct {
	Comma Token
	Data  *LineStringData
}

type MultiPointLiteral struct {
	Keyword Token
	First   *PointData
	Rest    []PointDataTail
	Close   Token
}

type PointDataTail struct {
	Comma Token
	Data  *PointData
}

type MultiPolygonLiteral struct {
	Keyword Token
	First   *PolygonData
	Rest    []PolygonDataTail
	Close   Token
}

type PolygonDataTail struct {
	Comma Token
	Data  *PolygonData
}

type PointLiteral struct {
	Keyword Token
	Data    *PointData
}

type PointData struct {
	Open     Token
	Position *PositionLiteral
	Close    Token
}

// PositionLiteral is two to four space-separated coordinates.
type PositionLiteral struct {
	X     *DoubleValue
	Space Token
	Y     *DoubleValue
	Z     *Coordinate
	M     *Coordinate
}

// Coordinate is SP doubleValue.
type Coordinate struct {
	Space Token
	Value *DoubleValue
}

type PolygonLiteral struct {
	Keyword Token
	Data    *PolygonData
}

type PolygonData struct {
	Open  Token
	First *RingLiteral
	Rest  []RingTail
	Close Token
}

type RingTail struct {
	Comma Token
	Ring  *RingLiteral
}

type RingLiteral struct {
	Open  Token
	First *PositionLiteral
	Rest  []PositionTail
	Close Token
}
