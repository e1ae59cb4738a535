package reader

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/sunhouse/asset"
	"github.com/achilleasa/sunhouse/log"
	"github.com/achilleasa/sunhouse/scene"
	"github.com/achilleasa/sunhouse/types"
)

const (
	// Camera settings used when a scene does not define a camera.
	defaultCameraHSize = 100
	defaultCameraVSize = 100
	defaultCameraFOV   = 60.0

	// Maximum nesting level for "call" directives.
	maxIncludeDepth = 16
)

type textSceneReader struct {
	logger log.Logger

	// The parsed scene.
	scene *scene.Scene

	// Named materials and the name of the material being defined.
	materials  map[string]scene.Material
	curMatName string

	// Material assigned to new objects; the default material if empty.
	useMatName string

	// The object that transform directives apply to.
	curObject scene.Object

	// View transform; applied to the camera once parsing completes.
	view *types.Mat4

	// An error stack that provides additional error information when
	// scene files include other files.
	errStack []string
}

// Create a new text scene reader.
func newTextSceneReader() *textSceneReader {
	return &textSceneReader{
		logger:    log.New("text scene reader"),
		scene:     scene.NewScene(),
		materials: make(map[string]scene.Material),
		errStack:  make([]string, 0),
	}
}

// Read scene definition.
func (r *textSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	err := r.parse(sceneRes)
	if err != nil {
		return nil, err
	}

	if r.scene.Camera == nil {
		r.logger.Warningf("no camera defined; using a %dx%d camera with a %g degree fov", defaultCameraHSize, defaultCameraVSize, defaultCameraFOV)
		r.scene.SetCamera(scene.NewCamera(defaultCameraHSize, defaultCameraVSize, types.Radians(defaultCameraFOV)))
	}
	if r.view != nil {
		if err = r.scene.Camera.SetTransform(*r.view); err != nil {
			return nil, r.emitError("", 0, "invalid view transform: %s", err.Error())
		}
	}
	if len(r.scene.World.Lights) == 0 {
		r.logger.Warning("no lights defined; only black pixels will be rendered")
	}

	r.logger.Infof("scene contains %d objects, %d lights and %d materials", len(r.scene.World.Objects), len(r.scene.World.Lights), len(r.materials))
	r.logger.Noticef("parsed scene in %d ms", time.Since(start).Nanoseconds()/1e6)

	return r.scene, nil
}

// Generate an error message that also includes any data in the error stack.
func (r *textSceneReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)

	var errMsg string
	if file != "" {
		errMsg = fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n"))
	} else {
		errMsg = fmt.Sprintf("error: %s\n%s", msg, strings.Join(r.errStack, "\n"))
	}

	return fmt.Errorf("%s", strings.Trim(errMsg, "\n"))
}

// Push a frame to the error stack.
func (r *textSceneReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *textSceneReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Parse text scene format.
func (r *textSceneReader) parse(res *asset.Resource) error {
	var lineNum int = 0
	var err error

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++

		line := scanner.Text()
		if commentIdx := strings.IndexByte(line, '#'); commentIdx != -1 {
			line = line[:commentIdx]
		}
		lineTokens := strings.Fields(line)
		if len(lineTokens) == 0 {
			continue
		}

		switch lineTokens[0] {
		case "call":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "call"; expected 1 argument; got %d`, len(lineTokens)-1)
			}
			if len(r.errStack) >= maxIncludeDepth {
				return r.emitError(res.Path(), lineNum, "maximum include depth (%d) exceeded", maxIncludeDepth)
			}

			incRes, err := asset.NewResource(lineTokens[1], res)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}

			r.pushFrame(fmt.Sprintf("referenced from %s:%d [call]", res.Path(), lineNum))
			r.logger.Infof(`%s: including "%s"`, res.Name(), incRes.Name())
			err = r.parse(incRes)
			incRes.Close()
			if err != nil {
				return err
			}
			r.popFrame()
		case "camera":
			err = r.parseCamera(lineTokens)
		case "view":
			err = r.parseView(lineTokens)
		case "light":
			err = r.parseLight(lineTokens)
		case "newmtl":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "newmtl"; expected 1 argument; got %d`, len(lineTokens)-1)
			}

			matName := lineTokens[1]
			if _, exists := r.materials[matName]; exists {
				return r.emitError(res.Path(), lineNum, `material "%s" already defined`, matName)
			}
			r.materials[matName] = scene.DefaultMaterial()
			r.curMatName = matName
		case "color", "ambient", "diffuse", "specular", "shininess":
			err = r.parseMaterialAttribute(lineTokens)
		case "usemtl":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "usemtl"; expected 1 argument; got %d`, len(lineTokens)-1)
			}

			matName := lineTokens[1]
			if _, exists := r.materials[matName]; !exists {
				return r.emitError(res.Path(), lineNum, `undefined material with name "%s"`, matName)
			}
			r.useMatName = matName
		case "sphere", "plane":
			err = r.parseObject(lineTokens)
		case "translate", "scale", "rotate-x", "rotate-y", "rotate-z", "rotate", "shear":
			err = r.parseTransform(lineTokens)
		default:
			return r.emitError(res.Path(), lineNum, `unknown directive "%s"`, lineTokens[0])
		}

		if err != nil {
			return r.emitError(res.Path(), lineNum, "%s", err.Error())
		}
	}

	if err = scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "could not read scene: %s", err.Error())
	}

	return nil
}

// Parse camera definition. Definitions use the following format:
// camera hsize vsize fov
// where fov is the field of view in degrees.
func (r *textSceneReader) parseCamera(lineTokens []string) error {
	if len(lineTokens) != 4 {
		return fmt.Errorf(`unsupported syntax for "camera"; expected 3 arguments: hsize vsize fov; got %d`, len(lineTokens)-1)
	}
	if r.scene.Camera != nil {
		return fmt.Errorf("camera already defined")
	}

	var dims [2]int
	for idx := 0; idx < 2; idx++ {
		v, err := strconv.Atoi(lineTokens[idx+1])
		if err != nil {
			return err
		}
		if v <= 0 {
			return fmt.Errorf("camera dimensions must be positive; got %d", v)
		}
		dims[idx] = v
	}

	fov, err := strconv.ParseFloat(lineTokens[3], 64)
	if err != nil {
		return err
	}
	if math.IsNaN(fov) || fov <= 0 || fov >= 180 {
		return fmt.Errorf("camera fov must be in the (0, 180) range; got %g", fov)
	}

	r.scene.SetCamera(scene.NewCamera(dims[0], dims[1], types.Radians(fov)))
	return nil
}

// Parse view transform definition. Definitions use the following format:
// view fromX fromY fromZ toX toY toZ upX upY upZ
func (r *textSceneReader) parseView(lineTokens []string) error {
	v, err := parseFloats(lineTokens, 9)
	if err != nil {
		return err
	}

	view := types.ViewTransform(
		types.Pt(v[0], v[1], v[2]),
		types.Pt(v[3], v[4], v[5]),
		types.Vec(v[6], v[7], v[8]),
	)
	if !view.IsInvertible() {
		return fmt.Errorf("degenerate view transform; from and to must differ and up must not be parallel to the view direction")
	}

	r.view = &view
	return nil
}

// Parse point light definition. Definitions use the following format:
// light posX posY posZ r g b
func (r *textSceneReader) parseLight(lineTokens []string) error {
	v, err := parseFloats(lineTokens, 6)
	if err != nil {
		return err
	}

	r.scene.World.AddLight(scene.NewPointLight(types.Pt(v[0], v[1], v[2]), types.RGB(v[3], v[4], v[5])))
	return nil
}

// Parse an attribute of the material defined by the last "newmtl".
func (r *textSceneReader) parseMaterialAttribute(lineTokens []string) error {
	if r.curMatName == "" {
		return fmt.Errorf(`got "%s" without a "newmtl"`, lineTokens[0])
	}

	var err error
	mat := r.materials[r.curMatName]
	switch lineTokens[0] {
	case "color":
		var v []float64
		if v, err = parseFloats(lineTokens, 3); err == nil {
			mat.Color = types.RGB(v[0], v[1], v[2])
		}
	case "ambient":
		mat.Ambient, err = parseFloat(lineTokens)
	case "diffuse":
		mat.Diffuse, err = parseFloat(lineTokens)
	case "specular":
		mat.Specular, err = parseFloat(lineTokens)
	case "shininess":
		mat.Shininess, err = parseFloat(lineTokens)
	}

	if err != nil {
		return err
	}
	if err = mat.Validate(); err != nil {
		return err
	}

	r.materials[r.curMatName] = mat
	return nil
}

// Add a new object to the world and select it as the target for subsequent
// transform directives.
func (r *textSceneReader) parseObject(lineTokens []string) error {
	if len(lineTokens) != 1 {
		return fmt.Errorf(`unsupported syntax for "%s"; expected 0 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	var obj scene.Object
	switch lineTokens[0] {
	case "sphere":
		obj = scene.NewSphere()
	case "plane":
		obj = scene.NewPlane()
	}

	if r.useMatName != "" {
		obj.SetMaterial(r.materials[r.useMatName])
	}

	if err := r.scene.World.AddObject(obj); err != nil {
		return err
	}
	r.curObject = obj
	return nil
}

// Append a transformation to the current object. Transformations compose
// in the order they are written so that the last one is applied first.
func (r *textSceneReader) parseTransform(lineTokens []string) error {
	if r.curObject == nil {
		return fmt.Errorf(`got "%s" without an object`, lineTokens[0])
	}

	var m types.Mat4
	switch lineTokens[0] {
	case "translate", "scale":
		v, err := parseFloats(lineTokens, 3)
		if err != nil {
			return err
		}
		if lineTokens[0] == "translate" {
			m = types.Translation(v[0], v[1], v[2])
		} else {
			m = types.Scaling(v[0], v[1], v[2])
		}
	case "rotate-x", "rotate-y", "rotate-z":
		deg, err := parseFloat(lineTokens)
		if err != nil {
			return err
		}
		switch lineTokens[0] {
		case "rotate-x":
			m = types.RotationX(types.Radians(deg))
		case "rotate-y":
			m = types.RotationY(types.Radians(deg))
		case "rotate-z":
			m = types.RotationZ(types.Radians(deg))
		}
	case "rotate":
		v, err := parseFloats(lineTokens, 4)
		if err != nil {
			return err
		}
		axis := types.Vec(v[0], v[1], v[2])
		if axis.Len() == 0 {
			return fmt.Errorf("rotation axis must not be the zero vector")
		}
		m = types.Rotation(axis, types.Radians(v[3]))
	case "shear":
		v, err := parseFloats(lineTokens, 6)
		if err != nil {
			return err
		}
		m = types.Shearing(v[0], v[1], v[2], v[3], v[4], v[5])
	}

	if err := r.curObject.SetTransform(r.curObject.Transform().Mul4(m)); err != nil {
		return fmt.Errorf("could not apply %q: %s", lineTokens[0], err.Error())
	}
	return nil
}

// Parse a float scalar value.
func parseFloat(lineTokens []string) (float64, error) {
	v, err := parseFloats(lineTokens, 1)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}

// Parse exactly count float arguments.
func parseFloats(lineTokens []string, count int) ([]float64, error) {
	if len(lineTokens)-1 != count {
		argLabel := "arguments"
		if count == 1 {
			argLabel = "argument"
		}
		return nil, fmt.Errorf(`unsupported syntax for "%s"; expected %d %s; got %d`, lineTokens[0], count, argLabel, len(lineTokens)-1)
	}

	out := make([]float64, count)
	for tokIdx := 1; tokIdx <= count; tokIdx++ {
		v, err := strconv.ParseFloat(lineTokens[tokIdx], 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf(`argument %d of "%s" is not a finite number`, tokIdx, lineTokens[0])
		}
		out[tokIdx-1] = v
	}
	return out, nil
}
