//go:build !noebiten

package geom

import "github.com/hajimehoshi/ebiten/v2"

// Ebitengine-related additional utility methods.

// Returns a [ebiten.GeoM] translated to the vector position,
// ready to be used in [ebiten.DrawImageOptions].
func (self Vec2) GeoM() ebiten.GeoM {
	var geoM ebiten.GeoM
	geoM.Translate(self.ToFloat64s())
	return geoM
}

// Utility function to retrieve the subimage corresponding
// to the rect area.
func (self Rect) Clip(image *ebiten.Image) *ebiten.Image {
	return image.SubImage(self.ImageRect()).(*ebiten.Image)
}
