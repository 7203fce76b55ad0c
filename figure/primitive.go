// seehuhn.de/go/figtikz - convert figures to PGFPlots code
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package figure

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a primitive.
type Kind int

// These are the primitive kinds.
const (
	KindLine Kind = iota + 1
	KindScatter
	KindBar
	KindPatch
	KindImage
	KindText
	KindLine3D
	KindScatter3D
	KindSurface3D
	KindLineCollection
	KindContour
)

var kindNames = map[Kind]string{
	KindLine:           "line",
	KindScatter:        "scatter",
	KindBar:            "bar",
	KindPatch:          "patch",
	KindImage:          "image",
	KindText:           "text",
	KindLine3D:         "line3d",
	KindScatter3D:      "scatter3d",
	KindSurface3D:      "surface3d",
	KindLineCollection: "linecollection",
	KindContour:        "contour",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts the name of a kind, as returned by Kind.String,
// back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown primitive kind %q", s)
}

// Primitive is one drawable object inside an axes.
//
// The set of implementations is closed: all primitive types are
// defined in this package.
type Primitive interface {
	Kind() Kind

	// Axes returns the axes the primitive belongs to.
	Axes() *Axes

	// Label returns the legend label, or "" if the primitive has no
	// legend entry.
	Label() string

	// Z returns the z-order of the primitive.
	Z() float64

	// Check verifies the geometry of the primitive.
	Check() error

	common() *Common
}

// Common holds the attributes shared by all primitives.
type Common struct {
	// Name is the legend label.  Labels starting with an underscore
	// are hidden.
	Name string `yaml:"label,omitempty"`

	ZOrder float64 `yaml:"zorder,omitempty"`

	// Alpha, if set, overrides the alpha component of all colours of
	// the primitive.
	Alpha *float64 `yaml:"alpha,omitempty"`

	axes *Axes
}

// Axes implements the Primitive interface.
func (c *Common) Axes() *Axes { return c.axes }

// Label implements the Primitive interface.
func (c *Common) Label() string {
	if strings.HasPrefix(c.Name, "_") {
		return ""
	}
	return c.Name
}

// Z implements the Primitive interface.
func (c *Common) Z() float64 { return c.ZOrder }

func (c *Common) common() *Common { return c }

// Opacity returns the effective opacity of a colour used by the
// primitive.
func (c *Common) Opacity(col RGBA) float64 {
	if c.Alpha != nil {
		return *c.Alpha
	}
	return col[3]
}

// RGBA is a colour with red, green, blue and alpha components in the
// range [0, 1].
type RGBA [4]float64

// FromBytes returns the opaque colour with the given 8-bit components.
func FromBytes(r, g, b uint8) RGBA {
	return RGBA{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Bytes returns the 8-bit red, green and blue components.
func (c RGBA) Bytes() (r, g, b uint8) {
	return to8(c[0]), to8(c[1]), to8(c[2])
}

func to8(x float64) uint8 {
	switch {
	case !(x > 0): // also catches NaN
		return 0
	case x >= 1:
		return 255
	}
	return uint8(x*255 + 0.5)
}

// Black is the default colour for edges and text.
var Black = RGBA{0, 0, 0, 1}

// isNone reports whether a line style or marker string means "nothing".
func isNone(s string) bool {
	switch s {
	case "", " ", "None", "none":
		return true
	}
	return false
}

// Line is a series of points, connected by line segments and/or drawn
// with markers.
type Line struct {
	Common `yaml:",inline"`

	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`

	Color RGBA    `yaml:"color"`
	Width float64 `yaml:"width"` // in points

	// Style is one of "-", "--", "-.", ":" or "None".
	Style string `yaml:"style"`

	// Dashes, if set, gives a custom on/off dash sequence in points.
	Dashes     []float64 `yaml:"dashes,omitempty"`
	DashOffset float64   `yaml:"dashoffset,omitempty"`

	CapStyle  string `yaml:"capstyle,omitempty"`  // butt, round, projecting
	JoinStyle string `yaml:"joinstyle,omitempty"` // miter, round, bevel

	// DrawStyle is "default" or one of the step styles "steps",
	// "steps-pre", "steps-mid", "steps-post".
	DrawStyle string `yaml:"drawstyle,omitempty"`

	Marker          string  `yaml:"marker,omitempty"`
	MarkerSize      float64 `yaml:"markersize,omitempty"` // in points
	MarkerFaceColor *RGBA   `yaml:"markerfacecolor,omitempty"`
	MarkerEdgeColor *RGBA   `yaml:"markeredgecolor,omitempty"`

	// FillStyle is "full" (the default) or "none" for hollow markers.
	FillStyle string `yaml:"fillstyle,omitempty"`
}

// Kind implements the Primitive interface.
func (l *Line) Kind() Kind { return KindLine }

// Check implements the Primitive interface.
func (l *Line) Check() error {
	if len(l.X) != len(l.Y) {
		return fmt.Errorf("%d x and %d y values: %w", len(l.X), len(l.Y), ErrLength)
	}
	return nil
}

// Len returns the number of points.
func (l *Line) Len() int { return len(l.X) }

// HasLine reports whether the points are connected by line segments.
func (l *Line) HasLine() bool { return !isNone(l.Style) && l.Width > 0 }

// HasMarkers reports whether markers are drawn at the points.
func (l *Line) HasMarkers() bool { return !isNone(l.Marker) }

// IsStep reports whether the line is drawn as a step function.
func (l *Line) IsStep() bool {
	return strings.HasPrefix(l.DrawStyle, "steps")
}

// MarkerFilled reports whether markers are drawn filled.
func (l *Line) MarkerFilled() bool { return l.FillStyle != "none" }

// Select keeps only the points with the given indices, in place.
// The indices must be increasing.
func (l *Line) Select(keep []int) {
	l.X = selectFloats(l.X, keep)
	l.Y = selectFloats(l.Y, keep)
}

// Scatter is a collection of markers with optional per-point sizes and
// colour values.
type Scatter struct {
	Common `yaml:",inline"`

	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`

	// Sizes gives the marker areas in square points, either one value
	// for all markers or one value per point.
	Sizes []float64 `yaml:"sizes,omitempty"`

	Color     RGBA  `yaml:"color"`
	EdgeColor *RGBA `yaml:"edgecolor,omitempty"`

	// Values, if set, gives one value per point which is mapped to a
	// colour through Colormap and CLim.
	Values   []float64   `yaml:"values,omitempty"`
	Colormap string      `yaml:"colormap,omitempty"`
	CLim     *[2]float64 `yaml:"clim,omitempty"`

	Marker string `yaml:"marker,omitempty"`
}

// Kind implements the Primitive interface.
func (s *Scatter) Kind() Kind { return KindScatter }

// Check implements the Primitive interface.
func (s *Scatter) Check() error {
	n := len(s.X)
	if len(s.Y) != n {
		return fmt.Errorf("%d x and %d y values: %w", n, len(s.Y), ErrLength)
	}
	if len(s.Sizes) > 1 && len(s.Sizes) != n {
		return fmt.Errorf("%d sizes for %d points: %w", len(s.Sizes), n, ErrLength)
	}
	if len(s.Values) > 0 && len(s.Values) != n {
		return fmt.Errorf("%d colour values for %d points: %w", len(s.Values), n, ErrLength)
	}
	return nil
}

// Len returns the number of points.
func (s *Scatter) Len() int { return len(s.X) }

// MarkerSize returns the marker size (diameter, in points) of point i.
func (s *Scatter) MarkerSize(i int) float64 {
	switch len(s.Sizes) {
	case 0:
		return defaultMarkerSize
	case 1:
		return sqrt(s.Sizes[0])
	}
	return sqrt(s.Sizes[i])
}

// PerPointSizes reports whether the markers have individual sizes.
func (s *Scatter) PerPointSizes() bool { return len(s.Sizes) > 1 }

// Select keeps only the points with the given indices, in place.
func (s *Scatter) Select(keep []int) {
	s.X = selectFloats(s.X, keep)
	s.Y = selectFloats(s.Y, keep)
	if len(s.Sizes) > 1 {
		s.Sizes = selectFloats(s.Sizes, keep)
	}
	if len(s.Values) > 0 {
		s.Values = selectFloats(s.Values, keep)
	}
}

// Bar is one rectangle of a bar plot, in data coordinates.
type Bar struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BarContainer holds the bars created by one bar plot call.
type BarContainer struct {
	Common `yaml:",inline"`

	Bars      []Bar   `yaml:"bars"`
	Color     RGBA    `yaml:"color"`
	EdgeColor *RGBA   `yaml:"edgecolor,omitempty"`
	LineWidth float64 `yaml:"linewidth,omitempty"`
	Hatch     string  `yaml:"hatch,omitempty"`
}

// Kind implements the Primitive interface.
func (b *BarContainer) Kind() Kind { return KindBar }

// Check implements the Primitive interface.
func (b *BarContainer) Check() error { return nil }

// Patch shapes.
const (
	ShapeRectangle = "rectangle"
	ShapePolygon   = "polygon"
	ShapeEllipse   = "ellipse"
)

// Patch is a closed (or open) shape with a face and an edge.
type Patch struct {
	Common `yaml:",inline"`

	Shape string `yaml:"shape"`

	// XY is the lower left corner of a rectangle, or the centre of an
	// ellipse.
	XY     [2]float64 `yaml:"xy,omitempty"`
	Width  float64    `yaml:"width,omitempty"`
	Height float64    `yaml:"height,omitempty"`

	// Angle is the rotation in degrees, counter-clockwise, around XY.
	Angle float64 `yaml:"angle,omitempty"`

	Vertices [][2]float64 `yaml:"vertices,omitempty"`
	Open     bool         `yaml:"open,omitempty"`

	// FaceColor and EdgeColor are nil for unfilled or unstroked
	// patches.
	FaceColor *RGBA   `yaml:"facecolor,omitempty"`
	EdgeColor *RGBA   `yaml:"edgecolor,omitempty"`
	LineWidth float64 `yaml:"linewidth,omitempty"`
	LineStyle string  `yaml:"linestyle,omitempty"`

	Hatch      string `yaml:"hatch,omitempty"`
	HatchColor *RGBA  `yaml:"hatchcolor,omitempty"`
}

// Kind implements the Primitive interface.
func (p *Patch) Kind() Kind { return KindPatch }

// Check implements the Primitive interface.
func (p *Patch) Check() error {
	switch p.Shape {
	case ShapeRectangle, ShapeEllipse:
		return nil
	case ShapePolygon:
		if len(p.Vertices) == 0 {
			return fmt.Errorf("polygon: %w", ErrNoData)
		}
		return nil
	}
	return fmt.Errorf("patch shape %q: %w", p.Shape, ErrShape)
}

// Image is a raster drawn into a rectangle of the axes.
type Image struct {
	Common `yaml:",inline"`

	// Data holds the pixel values in row-major order.  Shape is either
	// (rows, cols) for single-channel data, which is coloured through
	// Colormap and CLim, or (rows, cols, 3|4) for RGB(A) data with
	// values in [0, 1].
	Data  []float64 `yaml:"data"`
	Shape []int     `yaml:"shape"`

	// Origin is "upper" (the default) or "lower".
	Origin   string      `yaml:"origin,omitempty"`
	Colormap string      `yaml:"colormap,omitempty"`
	CLim     *[2]float64 `yaml:"clim,omitempty"`

	// Extent gives xmin, xmax, ymin, ymax in data coordinates.
	Extent *[4]float64 `yaml:"extent,omitempty"`
}

// Kind implements the Primitive interface.
func (im *Image) Kind() Kind { return KindImage }

// Check implements the Primitive interface.
func (im *Image) Check() error {
	if im.Data == nil {
		return fmt.Errorf("image: %w", ErrNoData)
	}
	switch {
	case len(im.Shape) == 2:
		// single channel
	case len(im.Shape) == 3 && (im.Shape[2] == 3 || im.Shape[2] == 4):
		// RGB or RGBA
	default:
		return fmt.Errorf("image shape %v, need rows×cols or rows×cols×3|4: %w", im.Shape, ErrShape)
	}
	n := 1
	for _, d := range im.Shape {
		if d <= 0 {
			return fmt.Errorf("image shape %v: %w", im.Shape, ErrShape)
		}
		n *= d
	}
	if len(im.Data) != n {
		return fmt.Errorf("image shape %v needs %d values, got %d: %w", im.Shape, n, len(im.Data), ErrShape)
	}
	return nil
}

// FlipVertical reports whether row 0 of the data is the bottom row of
// the image.
func (im *Image) FlipVertical() bool { return im.Origin == "lower" }

// DataExtent returns the image extent in data coordinates.  Without an
// explicit extent, pixel centres are placed at integer coordinates.
func (im *Image) DataExtent() [4]float64 {
	if im.Extent != nil {
		return *im.Extent
	}
	rows, cols := float64(im.Shape[0]), float64(im.Shape[1])
	if im.FlipVertical() {
		return [4]float64{-0.5, cols - 0.5, -0.5, rows - 0.5}
	}
	return [4]float64{-0.5, cols - 0.5, rows - 0.5, -0.5}
}

// Text is a text annotation.
type Text struct {
	Common `yaml:",inline"`

	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// Coords is "data" (the default) or "axes", where (0, 0) is the
	// lower left and (1, 1) the upper right corner of the axes box.
	Coords string `yaml:"coords,omitempty"`

	Text     string  `yaml:"text"`
	Size     float64 `yaml:"size,omitempty"` // font size in points
	Color    *RGBA   `yaml:"color,omitempty"`
	HAlign   string  `yaml:"halign,omitempty"` // left, center, right
	VAlign   string  `yaml:"valign,omitempty"` // baseline, bottom, center, top
	Rotation float64 `yaml:"rotation,omitempty"`
}

// Kind implements the Primitive interface.
func (t *Text) Kind() Kind { return KindText }

// Check implements the Primitive interface.
func (t *Text) Check() error { return nil }

// Line3D is a line in a three-dimensional axes.
type Line3D struct {
	Line `yaml:",inline"`

	Z []float64 `yaml:"z"`
}

// Kind implements the Primitive interface.
func (l *Line3D) Kind() Kind { return KindLine3D }

// Check implements the Primitive interface.
func (l *Line3D) Check() error {
	if err := l.Line.Check(); err != nil {
		return err
	}
	if len(l.Z) != len(l.X) {
		return fmt.Errorf("%d x and %d z values: %w", len(l.X), len(l.Z), ErrLength)
	}
	return nil
}

// Select keeps only the points with the given indices, in place.
func (l *Line3D) Select(keep []int) {
	l.Line.Select(keep)
	l.Z = selectFloats(l.Z, keep)
}

// Scatter3D is a scatter plot in a three-dimensional axes.
type Scatter3D struct {
	Scatter `yaml:",inline"`

	Z []float64 `yaml:"z"`
}

// Kind implements the Primitive interface.
func (s *Scatter3D) Kind() Kind { return KindScatter3D }

// Check implements the Primitive interface.
func (s *Scatter3D) Check() error {
	if err := s.Scatter.Check(); err != nil {
		return err
	}
	if len(s.Z) != len(s.X) {
		return fmt.Errorf("%d x and %d z values: %w", len(s.X), len(s.Z), ErrLength)
	}
	return nil
}

// Select keeps only the points with the given indices, in place.
func (s *Scatter3D) Select(keep []int) {
	s.Scatter.Select(keep)
	s.Z = selectFloats(s.Z, keep)
}

// Surface3D is a surface made of polygons, as produced by surface,
// triangulated surface and 3-D bar plots.
type Surface3D struct {
	Common `yaml:",inline"`

	// Polygons holds the vertices of each face.
	Polygons [][][3]float64 `yaml:"polygons"`
	Colormap string         `yaml:"colormap,omitempty"`
	Color    RGBA           `yaml:"color"`
}

// Kind implements the Primitive interface.
func (s *Surface3D) Kind() Kind { return KindSurface3D }

// Check implements the Primitive interface.
func (s *Surface3D) Check() error { return nil }

// LineCollection is a set of independent line segments, as used for
// wireframes and quiver plots.
type LineCollection struct {
	Common `yaml:",inline"`

	Segments [][][2]float64 `yaml:"segments"`
	Color    RGBA           `yaml:"color"`
	Width    float64        `yaml:"width,omitempty"`
}

// Kind implements the Primitive interface.
func (c *LineCollection) Kind() Kind { return KindLineCollection }

// Check implements the Primitive interface.
func (c *LineCollection) Check() error { return nil }

// ContourSet holds the contour lines of a contour plot.
type ContourSet struct {
	Common `yaml:",inline"`

	Levels   []float64      `yaml:"levels"`
	Segments [][][2]float64 `yaml:"segments"`
	Colormap string         `yaml:"colormap,omitempty"`
}

// Kind implements the Primitive interface.
func (c *ContourSet) Kind() Kind { return KindContour }

// Check implements the Primitive interface.
func (c *ContourSet) Check() error { return nil }

// selectFloats keeps the elements with the given increasing indices,
// reusing the backing array of x.
func selectFloats(x []float64, keep []int) []float64 {
	for j, i := range keep {
		x[j] = x[i]
	}
	return x[:len(keep)]
}
