package render

import (
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/quantalab/tauviz/errors"
)

// savePNG rasterizes the plot at the requested DPI. plot.Save would use the
// canvas default resolution, which is too coarse for publication figures.
func savePNG(p *plot.Plot, widthIn, heightIn float64, dpi int, path string) error {
	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(f); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// savePDF writes the plot as a vector PDF.
func savePDF(p *plot.Plot, widthIn, heightIn float64, path string) error {
	if err := p.Save(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
