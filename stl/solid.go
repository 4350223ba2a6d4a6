package stl

import (
	"encoding/binary"
	"io"

	"github.com/katalvlaran/meshbool/geom"
	"github.com/katalvlaran/meshbool/meshtopo"
	"github.com/katalvlaran/meshbool/rational"
)

const headerSize = 80

// Read parses a binary STL stream into a Mesh, adding every triangle in
// file order; degenerate triangles, which AddTriangle rejects, are
// skipped without an error. A triangle the format's header promised but the stream
// does not actually contain yields ErrTruncated.
//
// Grounded on primitives/mesh.rs's read_header/read_stl/read_triangle/
// read_point.
func Read(r io.Reader) (*meshtopo.Mesh, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, ErrShortHeader
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, ErrShortHeader
	}

	mesh := meshtopo.NewMesh()
	for i := uint32(0); i < count; i++ {
		t, err := readTriangle(r)
		if err != nil {
			return nil, ErrTruncated
		}
		mesh.AddTriangle(t) //nolint:errcheck
	}

	return mesh, nil
}

func readTriangle(r io.Reader) (geom.Triangle, error) {
	if _, err := readPoint(r); err != nil { // stored normal, discarded and recomputed
		return geom.Triangle{}, err
	}
	v1, err := readPoint(r)
	if err != nil {
		return geom.Triangle{}, err
	}
	v2, err := readPoint(r)
	if err != nil {
		return geom.Triangle{}, err
	}
	v3, err := readPoint(r)
	if err != nil {
		return geom.Triangle{}, err
	}

	var attrByteCount uint16
	if err := binary.Read(r, binary.LittleEndian, &attrByteCount); err != nil {
		return geom.Triangle{}, err
	}

	return geom.NewTriangle(v1, v2, v3), nil
}

func readPoint(r io.Reader) (geom.Point, error) {
	var xyz [3]float32
	if err := binary.Read(r, binary.LittleEndian, &xyz); err != nil {
		return geom.Point{}, err
	}
	return geom.NewPoint(
		rational.FromFloat32(xyz[0]),
		rational.FromFloat32(xyz[1]),
		rational.FromFloat32(xyz[2]),
	), nil
}

// Write serializes mesh to w as binary STL: an all-zero 80-byte header,
// the triangle count, then each triangle's (recomputed) normal, its three
// vertices, and a zero attribute byte count.
//
// Grounded on primitives/mesh.rs's write_stl/write_point.
func Write(w io.Writer, mesh *meshtopo.Mesh) error {
	var header [headerSize]byte
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	ids := mesh.TriangleIDs()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(ids))); err != nil {
		return err
	}

	for _, id := range ids {
		t := mesh.Triangle(id)
		if err := writePoint(w, geom.NewPoint(t.Normal.X, t.Normal.Y, t.Normal.Z)); err != nil {
			return err
		}
		for _, p := range t.Points {
			if err := writePoint(w, p); err != nil {
				return err
			}
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}

	return nil
}

func writePoint(w io.Writer, p geom.Point) error {
	xyz := [3]float32{p.X.MustToFloat32(), p.Y.MustToFloat32(), p.Z.MustToFloat32()}
	return binary.Write(w, binary.LittleEndian, xyz)
}
