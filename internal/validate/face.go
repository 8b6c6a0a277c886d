package validate

import (
	"github.com/ajsb85/brepkernel/internal/ops"
	"github.com/ajsb85/brepkernel/internal/store"
	"github.com/ajsb85/brepkernel/internal/topo"
)

// CheckFaceHasBoundary reports face if its region's exterior cycle has no
// half-edges.
func CheckFaceHasBoundary(g *ops.Graph, faceHandle store.Handle[topo.Face]) []error {
	face := faceHandle.Get()
	region := face.Region.Get()
	exterior := region.Exterior.Get()

	if len(exterior.HalfEdges) == 0 {
		return []error{FaceHasNoBoundary{Face: faceHandle}}
	}
	return nil
}

// CheckInteriorCycleWinding reports every interior cycle of region whose
// winding matches, rather than opposes, the exterior cycle's.
func CheckInteriorCycleWinding(g *ops.Graph, regionHandle store.Handle[topo.Region]) []error {
	resolve := store.Handle[topo.HalfEdge].Get
	region := regionHandle.Get()
	exteriorWinding := region.Exterior.Get().Winding(resolve)

	var errs []error
	for _, interiorHandle := range region.Interiors {
		if interiorHandle.Get().Winding(resolve) == exteriorWinding {
			errs = append(errs, InteriorCycleHasInvalidWinding{Region: regionHandle, Interior: interiorHandle})
		}
	}
	return errs
}
