package grammar

import (
	"slices"
	"sync"

	"github.com/maruel/natural"

	"github.com/ardnew/odatauri/cst"
	"github.com/ardnew/odatauri/parse"
)

// Rule is a rule parser whose node type has been erased.
type Rule func(parse.Cursor) parse.Result[any]

func rule[T any](p parse.Parser[T]) Rule {
	return func(c parse.Cursor) parse.Result[any] {
		return parse.As(p(c), func(v T) any { return v })
	}
}

// registry maps rule names, spelled as in the OData ABNF where the grammar
// names them, to their parsers.
var registry = sync.OnceValue(func() map[string]Rule {
	return map[string]Rule{
		"RWS":                                rule(rws),
		"BWS":                                rule(bws),
		"OWS":                                rule(ows),
		"beginObject":                        rule(beginObject),
		"endObject":                          rule(endObject),
		"beginArray":                         rule(beginArray),
		"endArray":                           rule(endArray),
		"nameSeparator":                      rule(nameSeparator),
		"valueSeparator":                     rule(valueSeparator),
		"commonExpr":                         rule(commonExpr),
		"arithmeticExpr":                     rule(arithmeticExpr),
		"comparisonExpr":                     rule(comparisonExpr),
		"logicalExpr":                        rule(logicalExpr),
		"addExpr":                            rule(addExpr),
		"subExpr":                            rule(subExpr),
		"mulExpr":                            rule(mulExpr),
		"divExpr":                            rule(divExpr),
		"divByExpr":                          rule(divByExpr),
		"modExpr":                            rule(modExpr),
		"eqExpr":                             rule(eqExpr),
		"neExpr":                             rule(neExpr),
		"ltExpr":                             rule(ltExpr),
		"leExpr":                             rule(leExpr),
		"gtExpr":                             rule(gtExpr),
		"geExpr":                             rule(geExpr),
		"inExpr":                             rule(inExpr),
		"andExpr":                            rule(andExpr),
		"orExpr":                             rule(orExpr),
		"hasExpr":                            rule(hasExpr),
		"rootExpr":                           rule(rootExpr),
		"firstMemberExpr":                    rule(firstMemberExpr),
		"inscopeMemberExpr":                  rule(inscopeMemberExpr),
		"inscopeVariableExpr":                rule(inscopeVariableExpr),
		"implicitVariableExpr":               rule(implicitVariableExpr),
		"memberExpr":                         rule(memberExpr),
		"memberCast":                         rule(memberCast),
		"propertyPathExpr":                   rule(propertyPathExpr),
		"annotationExpr":                     rule(annotationExpr),
		"annotation":                         rule(annotation),
		"qualifierSuffix":                    rule(qualifierSuffix),
		"collectionNavigationExpr":           rule(collectionNavigationExpr),
		"keyNavigationExpr":                  rule(keyNavigationExpr),
		"filterNavigationExpr":               rule(filterNavigationExpr),
		"keyPredicateInExpr":                 rule(keyPredicateInExpr),
		"singleNavigationExpr":               rule(singleNavigationExpr),
		"filterExpr":                         rule(filterExpr),
		"complexColPathExpr":                 rule(complexColPathExpr),
		"collectionPathExpr":                 rule(collectionPathExpr),
		"countPathExpr":                      rule(countPathExpr),
		"filterPathExpr":                     rule(filterPathExpr),
		"collectionMemberExpr":               rule(collectionMemberExpr),
		"complexPathExpr":                    rule(complexPathExpr),
		"primitivePathExpr":                  rule(primitivePathExpr),
		"boundFunctionExpr":                  rule(boundFunctionExpr),
		"functionExpr":                       rule(functionExpr),
		"functionExprParameters":             rule(functionExprParameters),
		"functionExprParameter":              rule(functionExprParameter),
		"anyExpr":                            rule(anyExpr),
		"allExpr":                            rule(allExpr),
		"lambda":                             rule(lambda),
		"parenExpr":                          rule(parenExpr),
		"listExpr":                           rule(listExpr),
		"negateExpr":                         rule(negateExpr),
		"notExpr":                            rule(notExpr),
		"castExpr":                           rule(castExpr),
		"isofExpr":                           rule(isofExpr),
		"castSource":                         rule(castSource),
		"sridLiteral":                        rule(sridLiteral),
		"geoLiteral":                         rule(geoLiteral),
		"collectionLiteral":                  rule(collectionLiteral),
		"lineStringLiteral":                  rule(lineStringLiteral),
		"lineStringData":                     rule(lineStringData),
		"multiLineStringLiteral":             rule(multiLineStringLiteral),
		"multiPointLiteral":                  rule(multiPointLiteral),
		"multiPolygonLiteral":                rule(multiPolygonLiteral),
		"pointLiteral":                       rule(pointLiteral),
		"pointData":                          rule(pointData),
		"positionLiteral":                    rule(positionLiteral),
		"coordinate":                         rule(coordinate),
		"polygonLiteral":                     rule(polygonLiteral),
		"polygonData":                        rule(polygonData),
		"ringLiteral":                        rule(ringLiteral),
		"header":                             rule(header),
		"content-id":                         rule(contentID),
		"entityid":                           rule(entityID),
		"IRI-in-header":                      rule(iriInHeader),
		"isolation":                          rule(isolation),
		"odata-maxversion":                   rule(odataMaxVersion),
		"odata-version":                      rule(odataVersion),
		"prefer":                             rule(prefer),
		"preference":                         rule(preference),
		"EQ-h":                               rule(eqH),
		"allowEntityReferencesPreference":    rule(allowEntityReferencesPreference),
		"trackChangesPreference":             rule(trackChangesPreference),
		"respondAsyncPreference":             rule(respondAsyncPreference),
		"callbackPreference":                 rule(callbackPreference),
		"callbackURL":                        rule(callbackURL),
		"continueOnErrorPreference":          rule(continueOnErrorPreference),
		"preferenceBoolean":                  rule(preferenceBoolean),
		"includeAnnotationsPreference":       rule(includeAnnotationsPreference),
		"annotationsList":                    rule(annotationsList),
		"annotationIdentifier":               rule(annotationIdentifier),
		"annotationTerm":                     rule(annotationTerm),
		"annotationIdentifierQualifier":      rule(annotationIdentifierQualifier),
		"maxpagesizePreference":              rule(maxPageSizePreference),
		"omitValuesPreference":               rule(omitValuesPreference),
		"returnPreference":                   rule(returnPreference),
		"waitPreference":                     rule(waitPreference),
		"arrayOrObject":                      rule(arrayOrObject),
		"complexColInUri":                    rule(complexColInURI),
		"complexInUri":                       rule(complexInURI),
		"memberInUri":                        rule(memberInURI),
		"annotationInUri":                    rule(annotationInURI),
		"propertyInUri":                      rule(propertyInURI),
		"valueInUri":                         rule(valueInURI),
		"primitiveColInUri":                  rule(primitiveColInURI),
		"rootExprCol":                        rule(rootExprCol),
		"primitiveLiteralInJSON":             rule(primitiveLiteralInJSON),
		"stringInJSON":                       rule(stringInJSON),
		"escapeInJSON":                       rule(escapeInJSON),
		"numberInJSON":                       rule(numberInJSON),
		"intInJSON":                          rule(intInJSON),
		"exponentInJSON":                     rule(exponentInJSON),
		"primitiveValue":                     rule(PrimitiveValue),
		"primitiveLiteral":                   rule(primitiveLiteral),
		"nullValue":                          rule(nullValue),
		"booleanValue":                       rule(booleanValue),
		"guidValue":                          rule(guidValue),
		"sbyteValue":                         rule(sbyteValue),
		"int16Value":                         rule(int16Value),
		"int32Value":                         rule(int32Value),
		"int64Value":                         rule(int64Value),
		"enumMemberValue":                    rule(enumMemberValue),
		"byteValue":                          rule(byteValue),
		"decimalValue":                       rule(decimalValue),
		"doubleValue":                        rule(doubleValue),
		"singleValue":                        rule(singleValue),
		"decimalNumber":                      rule(decimalNumber),
		"decimalFraction":                    rule(decimalFraction),
		"decimalExponent":                    rule(decimalExponent),
		"nanInfinity":                        rule(nanInfinity),
		"stringLiteral":                      rule(stringLiteral),
		"year":                               rule(year),
		"month":                              rule(month),
		"day":                                rule(day),
		"hour":                               rule(hour),
		"minute":                             rule(minute),
		"second":                             rule(second),
		"fractionalSeconds":                  rule(fractionalSeconds),
		"fractionalSecondsPart":              rule(fractionalSecondsPart),
		"timeOfDayValue":                     rule(timeOfDayValue),
		"timeOfDayValueInURL":                rule(timeOfDayValueInURL),
		"dateValue":                          rule(dateValue),
		"dateTimeOffsetValue":                rule(dateTimeOffsetValue),
		"dateTimeOffsetValueInURL":           rule(dateTimeOffsetValueInURL),
		"duration":                           rule(duration),
		"durationValue":                      rule(durationValue),
		"durationTime":                       rule(durationTime),
		"durationSeconds":                    rule(durationSeconds),
		"enum":                               rule(enum),
		"enumValue":                          rule(enumValue),
		"singleEnumValue":                    rule(singleEnumValue),
		"binary":                             rule(binary),
		"binaryValue":                        rule(binaryValue),
		"base64B16":                          rule(base64B16),
		"base64B8":                           rule(base64B8),
		"methodCallExpr":                     rule(methodCallExpr),
		"boolMethodCallExpr":                 rule(boolMethodCallExpr),
		"methodArgument":                     rule(methodArgument),
		"substringMethodCallExpr":            rule(substringMethodCallExpr),
		"caseMethodCallExpr":                 rule(caseMethodCallExpr),
		"casePair":                           rule(casePair),
		"odataIdentifier":                    rule(odataIdentifier),
		"namespacePart":                      rule(namespacePart),
		"entitySetName":                      rule(entitySetName),
		"singletonEntity":                    rule(singletonEntity),
		"entityTypeName":                     rule(entityTypeName),
		"complexTypeName":                    rule(complexTypeName),
		"typeDefinitionName":                 rule(typeDefinitionName),
		"enumerationTypeName":                rule(enumerationTypeName),
		"enumerationMember":                  rule(enumerationMember),
		"termName":                           rule(termName),
		"primitiveProperty":                  rule(primitiveProperty),
		"primitiveKeyProperty":               rule(primitiveKeyProperty),
		"primitiveColProperty":               rule(primitiveColProperty),
		"complexProperty":                    rule(complexProperty),
		"complexColProperty":                 rule(complexColProperty),
		"streamProperty":                     rule(streamProperty),
		"navigationProperty":                 rule(navigationProperty),
		"entityNavigationProperty":           rule(entityNavigationProperty),
		"entityColNavigationProperty":        rule(entityColNavigationProperty),
		"action":                             rule(action),
		"actionImport":                       rule(actionImport),
		"function":                           rule(function),
		"entityFunction":                     rule(entityFunction),
		"entityColFunction":                  rule(entityColFunction),
		"complexFunction":                    rule(complexFunction),
		"complexColFunction":                 rule(complexColFunction),
		"primitiveFunction":                  rule(primitiveFunction),
		"primitiveColFunction":               rule(primitiveColFunction),
		"entityFunctionImport":               rule(entityFunctionImport),
		"entityColFunctionImport":            rule(entityColFunctionImport),
		"complexFunctionImport":              rule(complexFunctionImport),
		"complexColFunctionImport":           rule(complexColFunctionImport),
		"primitiveFunctionImport":            rule(primitiveFunctionImport),
		"primitiveColFunctionImport":         rule(primitiveColFunctionImport),
		"parameterName":                      rule(parameterName),
		"lambdaVariableExpr":                 rule(lambdaVariableExpr),
		"computedProperty":                   rule(computedProperty),
		"annotationQualifier":                rule(annotationQualifier),
		"keyPropertyAlias":                   rule(keyPropertyAlias),
		"namespace":                          rule(namespace),
		"namespacePrefix":                    rule(namespacePrefix),
		"qualifiedEntityTypeName":            rule(qualifiedEntityTypeName),
		"qualifiedComplexTypeName":           rule(qualifiedComplexTypeName),
		"qualifiedTypeDefinitionName":        rule(qualifiedTypeDefinitionName),
		"qualifiedEnumTypeName":              rule(qualifiedEnumTypeName),
		"optionallyQualifiedEntityTypeName":  rule(optionallyQualifiedEntityTypeName),
		"optionallyQualifiedComplexTypeName": rule(optionallyQualifiedComplexTypeName),
		"abstractSpatialTypeName":            rule(abstractSpatialTypeName),
		"primitiveTypeName":                  rule(primitiveTypeName),
		"singleQualifiedTypeName":            rule(singleQualifiedTypeName),
		"qualifiedCollectionType":            rule(qualifiedCollectionType),
		"qualifiedTypeName":                  rule(qualifiedTypeName),
		"singleTypeName":                     rule(singleTypeName),
		"collectionTypeName":                 rule(collectionTypeName),
		"optionallyQualifiedTypeName":        rule(optionallyQualifiedTypeName),
		"parameterAlias":                     rule(parameterAlias),
		"qualifiedActionName":                rule(qualifiedActionName),
		"qualifiedFunctionName":              rule(qualifiedFunctionName),
		"parameterNameList":                  rule(parameterNameList),
		"parameterNames":                     rule(parameterNames),
		"allOperationsInSchema":              rule(allOperationsInSchema),
		"queryOptions":                       rule(queryOptions),
		"queryOption":                        rule(queryOption),
		"systemQueryOption":                  rule(systemQueryOption),
		"batchOptions":                       rule(batchOptions),
		"batchOption":                        rule(batchOption),
		"metadataOptions":                    rule(metadataOptions),
		"metadataOption":                     rule(metadataOption),
		"entityOptions":                      rule(entityOptions),
		"entityIDOption":                     rule(entityIDOption),
		"entityCastOptions":                  rule(entityCastOptions),
		"entityCastOption":                   rule(entityCastOption),
		"id":                                 rule(id),
		"IRI-in-query":                       rule(iriInQuery),
		"compute":                            rule(compute),
		"computeItem":                        rule(computeItem),
		"deltaToken":                         rule(deltaToken),
		"skipToken":                          rule(skipToken),
		"expand":                             rule(expand),
		"expandItem":                         rule(expandItem),
		"expandStar":                         rule(expandStar),
		"expandLevels":                       rule(expandLevels),
		"expandPathItem":                     rule(expandPathItem),
		"expandRef":                          rule(expandRef),
		"expandCount":                        rule(expandCount),
		"expandPath":                         rule(expandPath),
		"expandPathCast":                     rule(expandPathCast),
		"expandSegmentCast":                  rule(expandSegmentCast),
		"expandNavigation":                   rule(expandNavigation),
		"expandCountOptions":                 rule(expandCountOptions),
		"expandRefOptions":                   rule(expandRefOptions),
		"expandOptions":                      rule(expandOptions),
		"selectOptionsPC":                    rule(selectOptionsPC),
		"selectOptions":                      rule(selectOptions),
		"expandCountOption":                  rule(expandCountOption),
		"expandRefOption":                    rule(expandRefOption),
		"expandOption":                       rule(expandOption),
		"levels":                             rule(levels),
		"filter":                             rule(filter),
		"orderby":                            rule(orderBy),
		"orderByItem":                        rule(orderByItem),
		"orderByDirection":                   rule(orderByDirection),
		"skip":                               rule(skip),
		"top":                                rule(top),
		"index":                              rule(index),
		"format":                             rule(format),
		"mediaType":                          rule(mediaType),
		"inlinecount":                        rule(inlineCount),
		"schemaversion":                      rule(schemaVersion),
		"search":                             rule(search),
		"searchExpr":                         rule(searchExpr),
		"searchParenExpr":                    rule(searchParenExpr),
		"searchNegateExpr":                   rule(searchNegateExpr),
		"searchOrExpr":                       rule(searchOrExpr),
		"searchAndExpr":                      rule(searchAndExpr),
		"searchAnd":                          rule(searchAnd),
		"searchPhrase":                       rule(searchPhrase),
		"searchWord":                         rule(searchWord),
		"select":                             rule(selectOption),
		"selectItem":                         rule(selectItem),
		"qualifiedSelectItem":                rule(qualifiedSelectItem),
		"selectItemCast":                     rule(selectItemCast),
		"selectProperty":                     rule(selectProperty),
		"selectPrimitive":                    rule(selectPrimitive),
		"selectPrimitiveCol":                 rule(selectPrimitiveCol),
		"selectNavigation":                   rule(selectNavigation),
		"selectPathProperty":                 rule(selectPathProperty),
		"selectPropertySegment":              rule(selectPropertySegment),
		"selectOptionPC":                     rule(selectOptionPC),
		"selectItemOption":                   rule(selectItemOption),
		"aliasAndValue":                      rule(aliasAndValue),
		"nameAndValue":                       rule(nameAndValue),
		"parameterValue":                     rule(parameterValue),
		"customQueryOption":                  rule(customQueryOption),
		"customName":                         rule(customName),
		"customValueClause":                  rule(customValueClause),
		"customValue":                        rule(customValue),
		"odataUri":                           rule(odataURI),
		"serviceRoot":                        rule(serviceRoot),
		"segment-nz":                         rule(segmentNZ),
		"port":                               rule(port),
		"host":                               rule(host),
		"IP-literal":                         rule(ipLiteral),
		"IPv4address":                        rule(ipv4Address),
		"dec-octet":                          rule(decOctet),
		"reg-name":                           rule(regName),
		"odataRelativeUri":                   rule(odataRelativeURI),
		"batchUri":                           rule(batchURI),
		"batchQuery":                         rule(batchQuery),
		"entityUri":                          rule(entityURI),
		"entityCastUri":                      rule(entityCastURI),
		"metadataUri":                        rule(metadataURI),
		"metadataQuery":                      rule(metadataQuery),
		"resourceUri":                        rule(resourceURI),
		"resourceQuery":                      rule(resourceQuery),
		"resourcePath":                       rule(resourcePath),
		"entitySetPath":                      rule(entitySetPath),
		"singletonPath":                      rule(singletonPath),
		"actionImportPath":                   rule(actionImportPath),
		"functionImportPath":                 rule(functionImportPath),
		"functionImportNoParensPath":         rule(functionImportNoParensPath),
		"functionImportCallNoParens":         rule(functionImportCallNoParens),
		"crossjoinPath":                      rule(crossjoinPath),
		"allPath":                            rule(allPath),
		"allCast":                            rule(allCast),
		"typeCastEntity":                     rule(typeCastEntity),
		"typeCastComplex":                    rule(typeCastComplex),
		"collectionNavigation":               rule(collectionNavigation),
		"collectionNavPath":                  rule(collectionNavPath),
		"filterInPathNavigation":             rule(filterInPathNavigation),
		"eachPath":                           rule(eachPath),
		"keyNavigation":                      rule(keyNavigation),
		"keyPredicate":                       rule(keyPredicate),
		"simpleKey":                          rule(simpleKey),
		"keyPropertyValue":                   rule(keyPropertyValue),
		"compoundKey":                        rule(compoundKey),
		"keyValuePair":                       rule(keyValuePair),
		"keyPathSegments":                    rule(keyPathSegments),
		"keyPathLiteral":                     rule(keyPathLiteral),
		"singleNavigation":                   rule(singleNavigation),
		"propertyPathSegment":                rule(propertyPathSegment),
		"propertyPath":                       rule(propertyPath),
		"primitiveColPath":                   rule(primitiveColPath),
		"primitivePath":                      rule(primitivePath),
		"complexColPath":                     rule(complexColPath),
		"complexColCastPath":                 rule(complexColCastPath),
		"complexPath":                        rule(complexPath),
		"filterInPath":                       rule(filterInPath),
		"each":                               rule(each),
		"count":                              rule(count),
		"ref":                                rule(ref),
		"value":                              rule(value),
		"querySegment":                       rule(querySegment),
		"ordinalIndex":                       rule(ordinalIndex),
		"boundOperation":                     rule(boundOperation),
		"boundActionCall":                    rule(boundActionCall),
		"boundFunctionNoParensPath":          rule(boundFunctionNoParensPath),
		"boundFunctionCallNoParens":          rule(boundFunctionCallNoParens),
		"functionParameters":                 rule(functionParameters),
		"functionParameter":                  rule(functionParameter),
		"crossjoin":                          rule(crossjoin),
		"context":                            rule(context),
		"contextFragment":                    rule(contextFragment),
		"contextTypeFragment":                rule(contextTypeFragment),
		"contextEntitySetFragment":           rule(contextEntitySetFragment),
		"selectList":                         rule(selectList),
		"selectListItem":                     rule(selectListItem),
		"qualifiedSelectListItem":            rule(qualifiedSelectListItem),
		"selectListCast":                     rule(selectListCast),
		"selectListProperty":                 rule(selectListProperty),
		"selectListPrimitive":                rule(selectListPrimitive),
		"selectListPrimitiveCol":             rule(selectListPrimitiveCol),
		"selectListNavigation":               rule(selectListNavigation),
		"selectListPath":                     rule(selectListPath),
		"selectListPropertySegment":          rule(selectListPropertySegment),
		"selectPath":                         rule(selectPath),
	}
})

// Lookup returns the rule parser registered under name.
func Lookup(name string) (Rule, bool) {
	r, ok := registry()[name]

	return r, ok
}

// Rules returns the names of all registered rules in natural order.
func Rules() []string {
	names := make([]string, 0, len(registry()))
	for name := range registry() {
		names = append(names, name)
	}

	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}

		return 0
	})

	return names
}

// ODataURI parses a complete service URI: the service root followed by an
// optional relative URI.
func ODataURI(c parse.Cursor) parse.Result[*cst.ODataURI] { return odataURI(c) }

// ODataRelativeURI parses a resource path or one of the $batch, $entity and
// $metadata URIs, each with its query string.
func ODataRelativeURI(c parse.Cursor) parse.Result[*cst.ODataRelativeURI] {
	return odataRelativeURI(c)
}

// Header parses a single OData request or response header line.
func Header(c parse.Cursor) parse.Result[*cst.Header] { return header(c) }

// QueryOptions parses the query string of a resource URI, without the
// leading "?".
func QueryOptions(c parse.Cursor) parse.Result[*cst.QueryOptions] { return queryOptions(c) }
