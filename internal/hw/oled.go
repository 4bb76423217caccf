package hw

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
)

// OLEDDisplay scrolls text across an SSD1306 panel. The panel is monochrome,
// so the requested color selects nothing here; it matters only for drivers
// that can render it.
type OLEDDisplay struct {
	dev    *ssd1306.Dev
	bounds image.Rectangle

	// ScrollStep and FrameDelay control scroll speed.
	ScrollStep int
	FrameDelay time.Duration
}

func NewOLEDDisplay(bus i2c.Bus) (*OLEDDisplay, error) {
	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: %w", err)
	}
	return &OLEDDisplay{
		dev:        dev,
		bounds:     dev.Bounds(),
		ScrollStep: 2,
		FrameDelay: 30 * time.Millisecond,
	}, nil
}

// ShowMessage renders text into an off-screen strip and sweeps it across the
// panel, entering from the right edge and leaving on the left. The call is
// synchronous for the duration of the sweep, like a hardware scroll.
func (d *OLEDDisplay) ShowMessage(text string, _ RGB) error {
	face := basicfont.Face7x13
	textW := font.MeasureString(face, text).Ceil()
	panelW := d.bounds.Dx()
	panelH := d.bounds.Dy()

	strip := image.NewGray(image.Rect(0, 0, panelW+textW+panelW, panelH))
	drawer := font.Drawer{
		Dst:  strip,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(panelW),
			Y: fixed.I((panelH + face.Ascent) / 2),
		},
	}
	drawer.DrawString(text)

	for offset := 0; offset <= strip.Bounds().Dx()-panelW; offset += d.ScrollStep {
		if err := d.dev.Draw(d.bounds, strip, image.Pt(offset, 0)); err != nil {
			return fmt.Errorf("oled draw: %w", err)
		}
		time.Sleep(d.FrameDelay)
	}
	return nil
}

func (d *OLEDDisplay) Clear() error {
	if err := d.dev.Draw(d.bounds, image.NewGray(d.bounds), image.Point{}); err != nil {
		return fmt.Errorf("oled clear: %w", err)
	}
	return nil
}
