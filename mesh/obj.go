package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cosmcif/raytracer/asset"
	"github.com/cosmcif/raytracer/geom"
	"github.com/cosmcif/raytracer/log"
	"github.com/cosmcif/raytracer/material"
	"github.com/cosmcif/raytracer/render"
	"github.com/cosmcif/raytracer/types"
)

var logger = log.New("mesh")

// objParser is a line-oriented, directive-based OBJ reader. It has one job:
// turn a stream into a []geom.Triangle, tolerating malformed input by
// skipping it rather than failing the whole load.
type objParser struct {
	translation types.Vec3

	vertices []types.Vec3
	normals  []types.Vec3
	uvs      []types.Vec2

	smooth    bool
	triangles []geom.Triangle
}

// ParseOBJ reads an OBJ stream and returns the triangles it describes,
// translated by translation. Malformed or unrecognized
// lines are skipped silently; parsing never fails outright except for I/O
// errors from r itself.
func ParseOBJ(r io.Reader, translation types.Vec3) ([]geom.Triangle, error) {
	p := &objParser{translation: translation}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.parseLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh: reading obj stream: %w", err)
	}
	return p.triangles, nil
}

func (p *objParser) parseLine(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "v":
		if v, ok := parseVec3(fields[1:]); ok {
			p.vertices = append(p.vertices, v.Add(p.translation))
		}
	case "vn":
		if v, ok := parseVec3(fields[1:]); ok {
			p.normals = append(p.normals, v.Add(p.translation))
		}
	case "vt":
		if v, ok := parseVec2(fields[1:]); ok {
			p.uvs = append(p.uvs, v)
		}
	case "s":
		if len(fields) >= 2 {
			flag, err := strconv.Atoi(fields[1])
			p.smooth = err == nil && flag != 0
		}
	case "f":
		p.parseFace(fields[1:])
	default:
		// Unrecognized directive (comments, materials, groups, ...); the
		// loader is tolerant by design.
	}
}

func parseVec3(fields []string) (types.Vec3, bool) {
	if len(fields) < 3 {
		return types.Vec3{}, false
	}
	x, err1 := strconv.ParseFloat(fields[0], 32)
	y, err2 := strconv.ParseFloat(fields[1], 32)
	z, err3 := strconv.ParseFloat(fields[2], 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return types.Vec3{}, false
	}
	return types.Vec3{float32(x), float32(y), float32(z)}, true
}

func parseVec2(fields []string) (types.Vec2, bool) {
	if len(fields) < 2 {
		return types.Vec2{}, false
	}
	u, err1 := strconv.ParseFloat(fields[0], 32)
	v, err2 := strconv.ParseFloat(fields[1], 32)
	if err1 != nil || err2 != nil {
		return types.Vec2{}, false
	}
	return types.Vec2{float32(u), float32(v)}, true
}

// faceVertex holds the 1-based indices parsed out of a single "f" token,
// which may take the "i", "i//n" or "i/t/n" forms.
type faceVertex struct {
	v, vt, vn int // 0 means "absent"
}

func parseFaceToken(tok string) (faceVertex, bool) {
	parts := strings.Split(tok, "/")
	var fv faceVertex

	v, err := strconv.Atoi(parts[0])
	if err != nil {
		return fv, false
	}
	fv.v = v

	switch len(parts) {
	case 1:
		// "i"
	case 2:
		// "i/t" — texture only; harmless to support since it costs nothing
		// extra.
		if parts[1] != "" {
			if vt, err := strconv.Atoi(parts[1]); err == nil {
				fv.vt = vt
			}
		}
	case 3:
		if parts[1] != "" {
			if vt, err := strconv.Atoi(parts[1]); err == nil {
				fv.vt = vt
			}
		}
		if vn, err := strconv.Atoi(parts[2]); err == nil {
			fv.vn = vn
		}
	default:
		return fv, false
	}
	return fv, true
}

func (p *objParser) resolveIndex(idx, length int) int {
	if idx > 0 {
		return idx - 1
	}
	if idx < 0 {
		return length + idx
	}
	return -1
}

// parseFace triangulates a (possibly non-triangular) face by fan
// triangulation around the first vertex, matching how OBJ faces are
// conventionally consumed by renderers that only support triangles.
func (p *objParser) parseFace(tokens []string) {
	if len(tokens) < 3 {
		return
	}

	verts := make([]faceVertex, 0, len(tokens))
	for _, tok := range tokens {
		fv, ok := parseFaceToken(tok)
		if !ok {
			return
		}
		verts = append(verts, fv)
	}

	for i := 1; i < len(verts)-1; i++ {
		tri, ok := p.buildTriangle(verts[0], verts[i], verts[i+1])
		if !ok {
			continue
		}
		p.triangles = append(p.triangles, tri)
	}
}

func (p *objParser) buildTriangle(a, b, c faceVertex) (geom.Triangle, bool) {
	ia := p.resolveIndex(a.v, len(p.vertices))
	ib := p.resolveIndex(b.v, len(p.vertices))
	ic := p.resolveIndex(c.v, len(p.vertices))
	if ia < 0 || ib < 0 || ic < 0 || ia >= len(p.vertices) || ib >= len(p.vertices) || ic >= len(p.vertices) {
		return geom.Triangle{}, false
	}

	tri := geom.NewTriangle(p.vertices[ia], p.vertices[ib], p.vertices[ic])

	if p.smooth && a.vn != 0 && b.vn != 0 && c.vn != 0 {
		na := p.resolveIndex(a.vn, len(p.normals))
		nb := p.resolveIndex(b.vn, len(p.normals))
		nc := p.resolveIndex(c.vn, len(p.normals))
		if na >= 0 && nb >= 0 && nc >= 0 && na < len(p.normals) && nb < len(p.normals) && nc < len(p.normals) {
			tri.HasNormals = true
			tri.Normals = [3]types.Vec3{p.normals[na], p.normals[nb], p.normals[nc]}
		}
	}

	if a.vt != 0 && b.vt != 0 && c.vt != 0 {
		ta := p.resolveIndex(a.vt, len(p.uvs))
		tb := p.resolveIndex(b.vt, len(p.uvs))
		tc := p.resolveIndex(c.vt, len(p.uvs))
		if ta >= 0 && tb >= 0 && tc >= 0 && ta < len(p.uvs) && tb < len(p.uvs) && tc < len(p.uvs) {
			tri.HasUVs = true
			tri.UVs = [3]types.Vec2{p.uvs[ta], p.uvs[tb], p.uvs[tc]}
		}
	}

	return tri, true
}

// LoadFile resolves path (a local filesystem path or an http(s) URL) as an
// asset.Resource, parses it as an OBJ stream, and builds a Mesh. An
// unreachable or unparsable resource logs and returns an empty mesh, plus
// an IOError describing what went wrong; callers content with the scene
// rendering without the mesh can ignore the error, and callers that want to
// fail loudly can check it with errors.As.
func LoadFile(path string, translation types.Vec3, leafMax int, mat *material.Material) (*Mesh, error) {
	res, err := asset.NewResource(path, nil)
	if err != nil {
		logger.Errorf("could not open mesh resource %q: %s", path, err)
		return New(nil, leafMax, mat), render.NewIOError("mesh.LoadFile", fmt.Errorf("open %q: %w", path, err))
	}
	defer res.Close()

	triangles, err := ParseOBJ(res, translation)
	if err != nil {
		logger.Errorf("could not parse mesh resource %q: %s", path, err)
		return New(nil, leafMax, mat), render.NewIOError("mesh.LoadFile", fmt.Errorf("parse %q: %w", path, err))
	}

	logger.Debugf("loaded mesh %q: %d triangles", path, len(triangles))
	return New(triangles, leafMax, mat), nil
}
