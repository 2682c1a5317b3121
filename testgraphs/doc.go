// Package testgraphs provides the small literal graph corpus the
// reduction's property and scenario tests run against: triangle,
// diamond, path P5, K_{2,3}, the Petersen graph, house, bull, K4, and
// the edgeless graph on 5 vertices. Each constructor returns a Literal in
// the (numVertices, edges) shape package mapping consumes directly, and
// Literal.CoreGraph builds the same graph as a core.Graph, for exercising
// the FromCoreGraph seam.
package testgraphs
