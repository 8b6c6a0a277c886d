package step

import (
	"github.com/ajsb85/brepkernel/internal/xmath"
	"github.com/ajsb85/brepkernel/kernel"
)

// MeshConverter converts a kernel.TriMesh to STEP BREP entities.
//
// Grounded on ajsb85-sdfx's step/converter.go (original_source), adapted
// from github.com/deadsy/sdfx/vec/v3.Vec and sdf.Triangle3 to
// xmath.Point3/xmath.Vector3 and kernel.Triangle.
type MeshConverter struct {
	entities  []Entity
	idCounter int

	pointCache  map[xmath.Point3]int
	edgeCache   map[edgeKey]int
	normalCache map[xmath.Vector3]int
}

type edgeKey struct {
	v1, v2 xmath.Point3
}

func newEdgeKey(v1, v2 xmath.Point3) edgeKey {
	if v1.X < v2.X || (v1.X == v2.X && v1.Y < v2.Y) ||
		(v1.X == v2.X && v1.Y == v2.Y && v1.Z < v2.Z) {
		return edgeKey{v1, v2}
	}
	return edgeKey{v2, v1}
}

// NewMeshConverter creates a new mesh converter.
func NewMeshConverter() *MeshConverter {
	return &MeshConverter{
		entities:    make([]Entity, 0),
		idCounter:   1,
		pointCache:  make(map[xmath.Point3]int),
		edgeCache:   make(map[edgeKey]int),
		normalCache: make(map[xmath.Vector3]int),
	}
}

func (c *MeshConverter) addEntity(e Entity) int {
	e.SetID(c.idCounter)
	c.entities = append(c.entities, e)
	c.idCounter++
	return e.ID()
}

// getOrCreatePoint creates or retrieves a cached CARTESIAN_POINT, matching
// within tolerance rather than requiring exact equality.
func (c *MeshConverter) getOrCreatePoint(p xmath.Point3) int {
	const tolerance = 1e-6
	for cached, id := range c.pointCache {
		if cached.Distance(p) <= tolerance {
			return id
		}
	}

	point := &CartesianPoint{
		Name:        "",
		Coordinates: []float64{p.X.Float64(), p.Y.Float64(), p.Z.Float64()},
	}
	id := c.addEntity(point)
	c.pointCache[p] = id
	return id
}

// getOrCreateDirection creates or retrieves a cached DIRECTION.
func (c *MeshConverter) getOrCreateDirection(d xmath.Vector3) int {
	d = d.Normalize()

	if id, ok := c.normalCache[d]; ok {
		return id
	}

	dir := &Direction{
		Name:            "",
		DirectionRatios: []float64{d.X.Float64(), d.Y.Float64(), d.Z.Float64()},
	}
	id := c.addEntity(dir)
	c.normalCache[d] = id
	return id
}

func (c *MeshConverter) createAxis2Placement(origin xmath.Point3, zAxis, xAxis xmath.Vector3) int {
	locID := c.getOrCreatePoint(origin)
	axisID := c.getOrCreateDirection(zAxis)
	refDirID := c.getOrCreateDirection(xAxis)

	placement := &Axis2Placement3D{
		Name:         "",
		Location:     locID,
		Axis:         axisID,
		RefDirection: refDirID,
	}
	return c.addEntity(placement)
}

func (c *MeshConverter) createVertexPoint(p xmath.Point3) int {
	pointID := c.getOrCreatePoint(p)
	vertex := &VertexPoint{
		Name:           "",
		VertexGeometry: pointID,
	}
	return c.addEntity(vertex)
}

// createEdgeCurve creates an EDGE_CURVE with a LINE, deduplicated by
// endpoint pair regardless of direction.
func (c *MeshConverter) createEdgeCurve(v1, v2 xmath.Point3) int {
	key := newEdgeKey(v1, v2)
	if id, ok := c.edgeCache[key]; ok {
		return id
	}

	vertex1ID := c.createVertexPoint(v1)
	vertex2ID := c.createVertexPoint(v2)

	startPointID := c.getOrCreatePoint(v1)
	edgeVec := v2.Sub(v1)
	dirID := c.getOrCreateDirection(edgeVec.Normalize())
	magnitude := edgeVec.Magnitude()

	vector := &Vector{
		Name:        "",
		Orientation: dirID,
		Magnitude:   magnitude.Float64(),
	}
	vectorID := c.addEntity(vector)

	line := &Line{
		Name: "",
		Pnt:  startPointID,
		Dir:  vectorID,
	}
	lineID := c.addEntity(line)

	edge := &EdgeCurve{
		Name:         "",
		EdgeStart:    vertex1ID,
		EdgeEnd:      vertex2ID,
		EdgeGeometry: lineID,
		SameSense:    true,
	}
	edgeID := c.addEntity(edge)

	c.edgeCache[key] = edgeID
	return edgeID
}

// createTriangleFace creates an ADVANCED_FACE from a triangle.
func (c *MeshConverter) createTriangleFace(t kernel.Triangle) int {
	v0, v1, v2 := t.Points[0], t.Points[1], t.Points[2]

	edge1ID := c.createEdgeCurve(v0, v1)
	edge2ID := c.createEdgeCurve(v1, v2)
	edge3ID := c.createEdgeCurve(v2, v0)

	orientedEdge1 := &OrientedEdge{Name: "", EdgeElement: edge1ID, Orientation: true}
	oe1ID := c.addEntity(orientedEdge1)
	orientedEdge2 := &OrientedEdge{Name: "", EdgeElement: edge2ID, Orientation: true}
	oe2ID := c.addEntity(orientedEdge2)
	orientedEdge3 := &OrientedEdge{Name: "", EdgeElement: edge3ID, Orientation: true}
	oe3ID := c.addEntity(orientedEdge3)

	edgeLoop := &EdgeLoop{Name: "", EdgeList: []int{oe1ID, oe2ID, oe3ID}}
	loopID := c.addEntity(edgeLoop)

	faceBound := &FaceOuterBound{Name: "", Bound: loopID, Orientation: true}
	boundID := c.addEntity(faceBound)

	normal := triangleNormal(t)
	origin := v0
	xAxis := v1.Sub(v0).Normalize()
	zAxis := normal

	planeAxisID := c.createAxis2Placement(origin, zAxis, xAxis)
	plane := &Plane{Name: "", Position: planeAxisID}
	planeID := c.addEntity(plane)

	face := &AdvancedFace{
		Name:         "",
		Bounds:       []int{boundID},
		FaceGeometry: planeID,
		SameSense:    true,
	}
	return c.addEntity(face)
}

// triangleNormal computes the right-handed facet normal, the same
// convention export/stl uses.
func triangleNormal(t kernel.Triangle) xmath.Vector3 {
	u := t.Points[0].Sub(t.Points[1])
	v := t.Points[2].Sub(t.Points[1])
	return v.Cross(u).Normalize()
}

// triangleDegenerate reports whether t has near-zero area.
func triangleDegenerate(t kernel.Triangle, tolerance xmath.Scalar) bool {
	u := t.Points[1].Sub(t.Points[0])
	v := t.Points[2].Sub(t.Points[0])
	return u.Cross(v).Magnitude() <= tolerance
}

// ConvertMesh converts mesh's triangles into the STEP entity sequence for
// one named manifold solid BREP.
func (c *MeshConverter) ConvertMesh(mesh []kernel.Triangle, name string) []Entity {
	c.entities = make([]Entity, 0)
	c.idCounter = 1
	c.pointCache = make(map[xmath.Point3]int)
	c.edgeCache = make(map[edgeKey]int)
	c.normalCache = make(map[xmath.Vector3]int)

	appContext := &ApplicationContext{Application: "brepkernel STEP Writer"}
	appContextID := c.addEntity(appContext)

	lengthUnit := &LengthUnit{}
	lengthUnitID := c.addEntity(lengthUnit)
	planeAngleUnit := &PlaneAngleUnit{}
	planeAngleUnitID := c.addEntity(planeAngleUnit)
	solidAngleUnit := &SolidAngleUnit{}
	solidAngleUnitID := c.addEntity(solidAngleUnit)

	uncertainty := &UncertaintyMeasureWithUnit{
		Value:       1e-6,
		Unit:        lengthUnitID,
		Name:        "DISTANCE_ACCURACY_VALUE",
		Description: "Maximum model space distance between geometric entities",
	}
	uncertaintyID := c.addEntity(uncertainty)

	geomContext := &GeometricRepresentationContext{
		ContextIdentifier:        "",
		ContextType:              "3D",
		CoordinateSpaceDimension: 3,
		Uncertainty:              []int{uncertaintyID},
		Units:                    []int{lengthUnitID, planeAngleUnitID, solidAngleUnitID},
	}
	geomContextID := c.addEntity(geomContext)

	productContext := &ProductContext{
		Name:             "",
		FrameOfReference: appContextID,
		DisciplineType:   "mechanical",
	}
	productContextID := c.addEntity(productContext)

	product := &Product{
		Name:             name,
		Description:      "Generated from brepkernel",
		FrameOfReference: []int{productContextID},
	}
	productID := c.addEntity(product)

	productDefFormation := &ProductDefinitionFormation{Description: "", OfProduct: productID}
	pdfID := c.addEntity(productDefFormation)

	productDefContext := &ProductDefinitionContext{
		Name:             "",
		FrameOfReference: appContextID,
		LifeCycleStage:   "design",
	}
	pdcID := c.addEntity(productDefContext)

	productDef := &ProductDefinition{Description: "", Formation: pdfID, FrameOfReference: pdcID}
	pdID := c.addEntity(productDef)

	productDefShape := &ProductDefinitionShape{Name: "", Description: "", Definition: pdID}
	pdsID := c.addEntity(productDefShape)

	faceIDs := make([]int, 0, len(mesh))
	for _, triangle := range mesh {
		if !triangleDegenerate(triangle, 1e-9) {
			faceIDs = append(faceIDs, c.createTriangleFace(triangle))
		}
	}

	closedShell := &ClosedShell{Name: "", Faces: faceIDs}
	shellID := c.addEntity(closedShell)

	solidBrep := &ManifoldSolidBrep{Name: "", Outer: shellID}
	brepID := c.addEntity(solidBrep)

	placement := &Axis2Placement3D{
		Name:         "",
		Location:     c.getOrCreatePoint(xmath.NewPoint3(0, 0, 0)),
		Axis:         c.getOrCreateDirection(xmath.NewVector3(0, 0, 1)),
		RefDirection: c.getOrCreateDirection(xmath.NewVector3(1, 0, 0)),
	}
	mainPlacementID := c.addEntity(placement)

	advBrep := &AdvancedBrepShapeRepresentation{
		Name:           "",
		Items:          []int{brepID, mainPlacementID},
		ContextOfItems: geomContextID,
	}
	advBrepID := c.addEntity(advBrep)

	shapeDefRep := &ShapeDefinitionRepresentation{
		Definition:         pdsID,
		UsedRepresentation: advBrepID,
	}
	c.addEntity(shapeDefRep)

	return c.entities
}

// OptimizeMesh drops degenerate (near-zero-area) triangles before
// conversion.
func OptimizeMesh(mesh []kernel.Triangle) []kernel.Triangle {
	optimized := make([]kernel.Triangle, 0, len(mesh))
	for _, t := range mesh {
		if !triangleDegenerate(t, 1e-9) {
			optimized = append(optimized, t)
		}
	}
	return optimized
}
