// Command meshbool performs exact-arithmetic Boolean operations on pairs
// of closed triangular meshes stored as binary STL files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/meshbool/boolop"
	"github.com/katalvlaran/meshbool/meshtopo"
	"github.com/katalvlaran/meshbool/stl"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "union":
		runUnion(os.Args[2:])
	case "intersect":
		runIntersect(os.Args[2:])
	case "diff":
		runDiff(os.Args[2:])
	case "inspect":
		runInspect(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: meshbool <union|intersect|diff|inspect> ...")
}

func runUnion(args []string) {
	fs := flag.NewFlagSet("union", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 3 {
		log.Fatalf("usage: meshbool union <a.stl> <b.stl> <out.stl>")
	}

	eng := run(fs.Arg(0), fs.Arg(1))
	writeOne(fs.Arg(2), eng.Union())
}

func runIntersect(args []string) {
	fs := flag.NewFlagSet("intersect", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 3 {
		log.Fatalf("usage: meshbool intersect <a.stl> <b.stl> <out-prefix>")
	}

	eng := run(fs.Arg(0), fs.Arg(1))
	writeMany(fs.Arg(2), eng.Intersection())
}

func runDiff(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 3 {
		log.Fatalf("usage: meshbool diff <a.stl> <b.stl> <out-prefix>")
	}

	eng := run(fs.Arg(0), fs.Arg(1))
	writeMany(fs.Arg(2)+"-ab", eng.DifferenceAB())
	writeMany(fs.Arg(2)+"-ba", eng.DifferenceBA())
}

func run(pathA, pathB string) *boolop.Engine {
	meshA := readMesh(pathA)
	meshB := readMesh(pathB)

	logger := log.New(os.Stderr, "meshbool: ", log.LstdFlags)
	eng, err := boolop.Run(context.Background(), meshA, meshB, boolop.WithLogger(logger))
	if err != nil {
		log.Fatalf("boolop.Run failed: %v", err)
	}
	return eng
}

func readMesh(path string) *meshtopo.Mesh {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	mesh, err := stl.Read(f)
	if err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}
	return mesh
}

func writeOne(path string, mesh *meshtopo.Mesh) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	if err := stl.Write(f, mesh); err != nil {
		log.Fatalf("writing %s: %v", path, err)
	}
}

func writeMany(prefix string, meshes []*meshtopo.Mesh) {
	if len(meshes) == 0 {
		log.Printf("%s: no components", prefix)
		return
	}
	for i, m := range meshes {
		writeOne(fmt.Sprintf("%s-%d.stl", prefix, i), m)
	}
}

// runInspect reports a mesh's triangle/component counts and bounding box,
// and, when given a query point, the triangle whose bounding box lies
// nearest to it via a secondary rtreego spatial index — a diagnostic
// shortcut around a full point-in-solid test.
func runInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 && fs.NArg() != 4 {
		log.Fatalf("usage: meshbool inspect <mesh.stl> [x y z]")
	}

	mesh := readMesh(fs.Arg(0))
	box := mesh.Bounds()

	fmt.Printf("triangles: %d\n", mesh.NumTriangles())
	fmt.Printf("components: %d\n", len(mesh.SplitIntoComponents()))
	fmt.Printf("manifold: %t\n", mesh.GeometryCheck())
	fmt.Printf("bounds: [%s %s] [%s %s] [%s %s]\n",
		box.XMin.String(), box.XMax.String(),
		box.YMin.String(), box.YMax.String(),
		box.ZMin.String(), box.ZMax.String())

	if fs.NArg() != 4 {
		return
	}

	var qx, qy, qz float64
	fmt.Sscanf(fs.Arg(1), "%g", &qx)
	fmt.Sscanf(fs.Arg(2), "%g", &qy)
	fmt.Sscanf(fs.Arg(3), "%g", &qz)

	tree := rtreego.NewTree(3, 5, 20)
	for _, id := range mesh.TriangleIDs() {
		tree.Insert(newTriangleSpatial(id, mesh))
	}
	nearest := tree.NearestNeighbor(rtreego.Point{qx, qy, qz})
	if ts, ok := nearest.(*triangleSpatial); ok {
		fmt.Printf("nearest triangle: %d\n", ts.id)
	}
}
