package widgets

import (
	"fmt"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/gtkml"
	"github.com/go-drift/gtkml/pkg/markup"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// Img builds a picture from the src attribute. size sets both dimensions;
// otherwise width and height are used, a single one keeping the aspect
// ratio. A missing source, unknown file or undecodable image yields an
// empty placeholder and a warning.
func Img(ctx *gtkml.Context, el *markup.Element) (toolkit.Widget, error) {
	tk := ctx.Toolkit
	src, _ := el.Attr("src")
	if src == "" {
		ctx.Warn(el, errors.KindAsset, fmt.Errorf("<img> tag missing src attribute: %w", errors.ErrAssetNotFound))
		return tk.NewImage(), nil
	}

	path, err := ctx.AssetResolver().Resolve(src)
	if err != nil {
		ctx.Warn(el, errors.KindAsset, fmt.Errorf("image not found: %w", err))
		return tk.NewImage(), nil
	}

	width, height := imageSize(el)
	img, err := ctx.Assets.Load(path, width, height)
	if err != nil {
		ctx.Warn(el, errors.KindAsset, fmt.Errorf("could not load image '%s': %w", src, err))
		return tk.NewImage(), nil
	}

	pic := tk.NewPicture(img)
	pic.SetContentFit(toolkit.FitContain)
	if width > 0 || height > 0 {
		b := img.Bounds()
		pic.SetSizeRequest(b.Dx(), b.Dy())
		pic.SetHAlign(toolkit.AlignCenter)
		pic.SetVAlign(toolkit.AlignCenter)
	}
	return pic, nil
}

func imageSize(el *markup.Element) (width, height int) {
	if n, ok := el.Int("size"); ok && n > 0 {
		return n, n
	}
	if n, ok := el.Int("width"); ok && n > 0 {
		width = n
	}
	if n, ok := el.Int("height"); ok && n > 0 {
		height = n
	}
	return width, height
}
